package api

import (
	"fmt"
	"net/http"
	"sort"
	"time"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/aggregate"
	"nestmetrics/internal/errors"
	"nestmetrics/internal/scoring"

	"github.com/gin-gonic/gin"
)

// handleStats serves GET /api/stats
func (s *Server) handleStats(c *gin.Context) {
	overview, err := s.provider.Overview()
	if err != nil {
		respondError(c, err)
		return
	}
	boroughs, err := s.provider.ByBorough(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	roomTypes, err := s.provider.ByRoomType(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	boroughBlock := make(gin.H, len(boroughs))
	for _, bs := range boroughs {
		boroughBlock[string(bs.Borough)] = gin.H{
			"avg_price":    scoring.Round2(bs.AvgPrice),
			"median_price": scoring.Round2(bs.MedianPrice),
			"listings":     bs.Listings,
			"avg_reviews":  scoring.Round2(bs.AvgReviews),
		}
	}

	roomTypeBlock := make(gin.H, len(roomTypes))
	for _, rs := range roomTypes {
		roomTypeBlock[string(rs.RoomType)] = gin.H{
			"avg_price":   scoring.Round2(rs.AvgPrice),
			"listings":    rs.Listings,
			"avg_reviews": scoring.Round2(rs.AvgReviews),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"overview": gin.H{
			"avg_price":       scoring.Round2(overview.AvgPrice),
			"median_price":    scoring.Round2(overview.MedianPrice),
			"avg_reviews":     scoring.Round2(overview.AvgReviews),
			"total_listings":  overview.TotalListings,
			"active_listings": overview.ActiveListings,
		},
		"market_trends":     aggregate.Trends(time.Now()),
		"neighborhoods":     boroughBlock,
		"room_types":        roomTypeBlock,
		"performance_tiers": s.provider.Tiers(),
	})
}

// handleAdvancedAnalytics serves GET /api/advanced-analytics
func (s *Server) handleAdvancedAnalytics(c *gin.Context) {
	distribution, err := s.provider.PriceDistribution()
	if err != nil {
		respondError(c, err)
		return
	}
	boroughs, err := s.provider.ByBorough(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	roomTypes, err := s.provider.ByRoomType(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	priceByRoomType := make(gin.H, len(roomTypes))
	for _, rs := range roomTypes {
		priceByRoomType[string(rs.RoomType)] = scoring.Round2(rs.AvgPrice)
	}

	boroughPricing := make(gin.H, len(boroughs))
	availabilityTrends := make(gin.H, len(boroughs))
	for _, bs := range boroughs {
		boroughPricing[string(bs.Borough)] = gin.H{
			"mean":  scoring.Round2(bs.AvgPrice),
			"count": bs.Listings,
		}
		availabilityTrends[string(bs.Borough)] = scoring.Round2(bs.AvgAvailability)
	}

	// Top hosts by listing volume, not performance score.
	hosts := s.provider.ByHost()
	topByVolume := make([]aggregate.HostStats, len(hosts))
	copy(topByVolume, hosts)
	sortHostsByVolume(topByVolume)
	if len(topByVolume) > 10 {
		topByVolume = topByVolume[:10]
	}
	hostBlock := make(gin.H, len(topByVolume))
	for _, h := range topByVolume {
		hostBlock[h.HostName] = gin.H{
			"listings":      h.Listings,
			"avg_price":     scoring.Round2(h.AvgPrice),
			"total_reviews": h.ReviewCount,
		}
	}

	patterns := s.provider.Patterns()

	c.JSON(http.StatusOK, gin.H{
		"price_insights": gin.H{
			"avg_price_by_room_type": priceByRoomType,
			"price_distribution": gin.H{
				"q25":    scoring.Round2(distribution.Q25),
				"median": scoring.Round2(distribution.Median),
				"q75":    scoring.Round2(distribution.Q75),
				"mean":   scoring.Round2(distribution.Mean),
			},
			"neighborhood_pricing": boroughPricing,
		},
		"host_insights": gin.H{
			"verified_vs_unverified": s.provider.VerifiedPricing(),
			"top_hosts":              hostBlock,
		},
		"booking_patterns": gin.H{
			"instant_bookable_ratio": scoring.Round2(patterns.InstantBookableRatio),
			"avg_minimum_nights":     scoring.Round2(patterns.AvgMinimumNights),
			"availability_trends":    availabilityTrends,
		},
	})
}

// handleListings serves GET /api/listings — raw rows, unfiltered by the
// plausible price band
func (s *Server) handleListings(c *gin.Context) {
	limit, err := intQuery(c, "limit", s.config.Data.ListingLimit)
	if err != nil {
		respondError(c, err)
		return
	}
	if limit < 0 {
		respondError(c, errors.InvalidInput("limit must not be negative"))
		return
	}

	borough := c.Query("neighborhood")
	roomType := c.Query("room_type")

	filtered := s.provider.Snapshot().Filter(func(l listing.Listing) bool {
		if borough != "" && l.Borough != listing.Borough(borough) {
			return false
		}
		if roomType != "" && l.RoomType != listing.RoomType(roomType) {
			return false
		}
		return true
	})
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	if filtered == nil {
		filtered = []listing.Listing{}
	}

	c.JSON(http.StatusOK, filtered)
}

// handleTravelInsights serves GET /api/travel-insights
func (s *Server) handleTravelInsights(c *gin.Context) {
	budget, err := floatQuery(c, "budget", 200)
	if err != nil {
		respondError(c, err)
		return
	}
	borough := listing.Borough(c.DefaultQuery("neighborhood", string(listing.BoroughManhattan)))

	insights, err := s.engine.TravelInsightsFor(borough, budget)
	if err != nil {
		respondError(c, err)
		return
	}

	accommodationTypes := make(gin.H, len(insights.RoomCounts))
	for rt, n := range insights.RoomCounts {
		accommodationTypes[string(rt)] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"destination_overview": gin.H{
			"total_options":  insights.TotalOptions,
			"within_budget":  insights.WithinBudget,
			"avg_price":      insights.AvgPrice,
			"budget_savings": insights.BudgetSavings,
		},
		"booking_trends": gin.H{
			"peak_season":    "Summer (Jun-Aug)",
			"best_deals":     "Winter (Dec-Feb)",
			"booking_window": "2-3 weeks ahead",
			"availability":   insights.Availability,
		},
		"traveler_tips": gin.H{
			"price_range": fmt.Sprintf("$%.2f-%.2f", insights.PriceQ25, insights.PriceQ75),
			"sweet_spot":  fmt.Sprintf("$%.2f", insights.SweetSpot),
			"description": fmt.Sprintf("Typical pricing for %s", borough),
		},
		"area_highlights": gin.H{
			"accommodation_types": accommodationTypes,
			"room_distribution": gin.H{
				"entire_home":  insights.RoomCounts[listing.RoomEntireHome],
				"private_room": insights.RoomCounts[listing.RoomPrivateRoom],
				"shared_room":  insights.RoomCounts[listing.RoomSharedRoom],
			},
		},
	})
}

type optimizerRequest struct {
	Budget       *float64 `json:"budget"`
	Neighborhood *string  `json:"neighborhood"`
	Guests       *int     `json:"guests"`
	TripLength   *int     `json:"trip_length"`
}

// handleBookingOptimizer serves POST /api/booking-optimizer
func (s *Server) handleBookingOptimizer(c *gin.Context) {
	var req optimizerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid optimizer request: "+err.Error()))
		return
	}

	optReq := scoring.OptimizerRequest{
		Borough:    listing.Borough(stringOr(req.Neighborhood, string(listing.BoroughManhattan))),
		Budget:     200,
		Guests:     intOr(req.Guests, 2),
		TripLength: intOr(req.TripLength, 3),
	}
	if req.Budget != nil {
		optReq.Budget = *req.Budget
	}

	result, err := s.engine.OptimizeBooking(optReq)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"budget_optimization": gin.H{
			"daily_limit":   result.DailyBudget,
			"total_budget":  result.TotalBudget,
			"options_found": result.OptionsFound,
			"avg_savings":   result.AvgSavings,
		},
		"booking_timing": gin.H{
			"optimal_window": "14-21 days ahead",
			"price_trend":    "Prices increase closer to dates",
			"best_days":      "Tuesday-Thursday for bookings",
			"avoid_dates":    "Major holidays and events",
		},
		"value_recommendations": gin.H{
			"best_value":        result.BestValue,
			"budget_picks":      result.BudgetPicks,
			"alternative_areas": result.Alternatives,
		},
		"booking_tips": []string{
			fmt.Sprintf("Book accommodations for %d guests", optReq.Guests),
			fmt.Sprintf("Stay within $%.2f/night budget", result.DailyBudget),
			"Read recent reviews before booking",
			"Check cancellation policies",
			"Consider location vs transportation costs",
		},
	})
}

// handleMarketReport serves GET /api/market-report?format=md|html
func (s *Server) handleMarketReport(c *gin.Context) {
	format := c.DefaultQuery("format", "md")
	switch format {
	case "md":
		md, err := s.reports.Markdown(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
	case "html":
		rendered, err := s.reports.HTML(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", rendered)
	default:
		respondError(c, errors.InvalidInput("format must be md or html"))
	}
}

// sortHostsByVolume orders hosts by listing count descending, stable on
// dataset order
func sortHostsByVolume(hosts []aggregate.HostStats) {
	sort.SliceStable(hosts, func(i, j int) bool {
		return hosts[i].Listings > hosts[j].Listings
	})
}
