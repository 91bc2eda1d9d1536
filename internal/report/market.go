package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/scoring"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Builder renders a market summary report from dataset aggregates.
type Builder struct {
	provider *aggregate.Provider
	engine   *scoring.Engine
}

// NewBuilder creates a report builder
func NewBuilder(provider *aggregate.Provider, engine *scoring.Engine) *Builder {
	return &Builder{provider: provider, engine: engine}
}

// Markdown renders the report as a markdown document.
func (b *Builder) Markdown(ctx context.Context) (string, error) {
	overview, err := b.provider.Overview()
	if err != nil {
		return "", err
	}
	boroughs, err := b.provider.ByBorough(ctx)
	if err != nil {
		return "", err
	}
	roomTypes, err := b.provider.ByRoomType(ctx)
	if err != nil {
		return "", err
	}
	hosts, err := b.engine.RankHosts()
	if err != nil {
		return "", err
	}
	trends := aggregate.Trends(time.Now())

	var sb strings.Builder
	sb.WriteString("# Market Report\n\n")
	fmt.Fprintf(&sb, "Generated %s over %d listings.\n\n",
		time.Now().Format("2006-01-02"), overview.TotalListings)

	sb.WriteString("## Overview\n\n")
	fmt.Fprintf(&sb, "- Average nightly price: $%.2f (median $%.2f)\n",
		overview.AvgPrice, overview.MedianPrice)
	fmt.Fprintf(&sb, "- Average monthly reviews: %.2f\n", overview.AvgReviews)
	fmt.Fprintf(&sb, "- Active listings: %d of %d\n",
		overview.ActiveListings, overview.TotalListings)
	fmt.Fprintf(&sb, "- Seasonal price factor: %.2f\n\n", trends.SeasonalFactor)

	sb.WriteString("## Neighbourhood groups\n\n")
	sb.WriteString("| Area | Avg price | Median | Listings | Avg reviews |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, bs := range boroughs {
		fmt.Fprintf(&sb, "| %s | $%.2f | $%.2f | %d | %.2f |\n",
			bs.Borough, bs.AvgPrice, bs.MedianPrice, bs.Listings, bs.AvgReviews)
	}
	sb.WriteString("\n")

	sb.WriteString("## Room types\n\n")
	sb.WriteString("| Type | Avg price | Listings | Avg reviews |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, rs := range roomTypes {
		fmt.Fprintf(&sb, "| %s | $%.2f | %d | %.2f |\n",
			rs.RoomType, rs.AvgPrice, rs.Listings, rs.AvgReviews)
	}
	sb.WriteString("\n")

	sb.WriteString("## Top hosts\n\n")
	sb.WriteString("| Host | Listings | Avg price | Score | Tier |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, h := range hosts {
		fmt.Fprintf(&sb, "| %s | %d | $%.2f | %.1f | %s |\n",
			h.HostName, h.ListingsCount, h.AvgPrice, h.PerformanceScore, h.Tier)
	}

	return sb.String(), nil
}

// HTML renders the report as an HTML fragment.
func (b *Builder) HTML(ctx context.Context) ([]byte, error) {
	md, err := b.Markdown(ctx)
	if err != nil {
		return nil, err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer), nil
}
