package report

import (
	"context"
	"testing"

	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/scoring"
	"nestmetrics/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuilder() *Builder {
	provider := aggregate.NewProvider(testkit.NewKit().Snapshot())
	engine := scoring.NewEngine(provider, nil)
	return NewBuilder(provider, engine)
}

func TestMarkdownReportSections(t *testing.T) {
	b := newTestBuilder()

	md, err := b.Markdown(context.Background())
	require.NoError(t, err)

	assert.Contains(t, md, "# Market Report")
	assert.Contains(t, md, "## Overview")
	assert.Contains(t, md, "## Neighbourhood groups")
	assert.Contains(t, md, "## Room types")
	assert.Contains(t, md, "## Top hosts")
	assert.Contains(t, md, "| Manhattan |")
	assert.Contains(t, md, "| Entire home/apt |")
}

func TestHTMLReportRendersTables(t *testing.T) {
	b := newTestBuilder()

	rendered, err := b.HTML(context.Background())
	require.NoError(t, err)

	html := string(rendered)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "Market Report")
}
