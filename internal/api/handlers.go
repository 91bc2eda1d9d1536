package api

import (
	"fmt"
	"net/http"
	"strconv"

	"nestmetrics/domain/listing"
	"nestmetrics/internal/errors"
	"nestmetrics/internal/scoring"

	"github.com/gin-gonic/gin"
)

// respondError maps application errors onto the {error} JSON contract.
func respondError(c *gin.Context, err error) {
	c.JSON(errors.HTTPStatus(err), gin.H{"error": err.Error()})
}

// handleHealth reports liveness
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Backend is working!",
		"status":  "success",
	})
}

type predictRequest struct {
	RoomType      *string `json:"room_type"`
	Borough       *string `json:"neighbourhood_group"`
	MinimumNights *int    `json:"minimum_nights"`
	Availability  *int    `json:"availability_365"`
	HostListings  *int    `json:"host_listings"`
}

// handlePredict serves POST /api/ml-predict
func (s *Server) handlePredict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid prediction request: "+err.Error()))
		return
	}

	prediction, err := s.engine.PredictPrice(scoring.PredictionRequest{
		RoomType:      listing.RoomType(stringOr(req.RoomType, string(listing.RoomEntireHome))),
		Borough:       listing.Borough(stringOr(req.Borough, string(listing.BoroughManhattan))),
		MinimumNights: intOr(req.MinimumNights, 1),
		Availability:  intOr(req.Availability, 365),
		HostListings:  intOr(req.HostListings, 1),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"predicted_price": prediction.Price,
		"confidence_interval": gin.H{
			"lower": prediction.Lower,
			"upper": prediction.Upper,
		},
		"model_accuracy":         prediction.AccuracyLabel,
		"similar_listings_count": prediction.SimilarCount,
	})
}

type bookingScoreRequest struct {
	ListingID    *int64   `json:"listing_id"`
	Price        *float64 `json:"price"`
	Neighborhood *string  `json:"neighborhood"`
}

// handleBookingScore serves GET|POST /api/booking-score
func (s *Server) handleBookingScore(c *gin.Context) {
	price := 100.0
	borough := string(listing.BoroughManhattan)

	if c.Request.Method == http.MethodPost {
		var req bookingScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, errors.InvalidInput("invalid booking score request: "+err.Error()))
			return
		}
		if req.Price != nil {
			price = *req.Price
		}
		borough = stringOr(req.Neighborhood, borough)
	} else {
		var err error
		if price, err = floatQuery(c, "price", price); err != nil {
			respondError(c, err)
			return
		}
		borough = c.DefaultQuery("neighborhood", borough)
	}

	result, err := s.engine.BookingScore(price, listing.Borough(borough))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_score":           scoring.Round1(result.Score),
		"price_competitiveness":   scoring.Round1(result.PriceScore),
		"availability_likelihood": scoring.Round1(result.AvailabilityScore),
		"insights": gin.H{
			"best_booking_time": result.BestBookingTime,
			"booking_urgency":   result.Urgency,
			"price_vs_market":   fmt.Sprintf("$%g vs $%.2f avg", price, result.AvgAreaPrice),
			"recommendation":    result.Recommendation,
		},
		"tips": []string{
			"Book 2-3 weeks in advance for best rates",
			"Check cancellation policy before booking",
			"Read recent reviews for current conditions",
		},
	})
}

type findDealsRequest struct {
	RoomType     *string  `json:"room_type"`
	Neighborhood *string  `json:"neighborhood"`
	MaxBudget    *float64 `json:"max_budget"`
	Guests       *int     `json:"guests"`
}

// handleFindDeals serves GET|POST /api/find-deals
func (s *Server) handleFindDeals(c *gin.Context) {
	dealReq := scoring.DealRequest{
		RoomType:  listing.RoomEntireHome,
		Borough:   listing.BoroughManhattan,
		MaxBudget: 200,
		Guests:    2,
	}

	if c.Request.Method == http.MethodPost {
		var req findDealsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, errors.InvalidInput("invalid deal request: "+err.Error()))
			return
		}
		dealReq.RoomType = listing.RoomType(stringOr(req.RoomType, string(dealReq.RoomType)))
		dealReq.Borough = listing.Borough(stringOr(req.Neighborhood, string(dealReq.Borough)))
		if req.MaxBudget != nil {
			dealReq.MaxBudget = *req.MaxBudget
		}
		dealReq.Guests = intOr(req.Guests, dealReq.Guests)
	} else {
		var err error
		dealReq.RoomType = listing.RoomType(c.DefaultQuery("room_type", string(dealReq.RoomType)))
		dealReq.Borough = listing.Borough(c.DefaultQuery("neighborhood", string(dealReq.Borough)))
		if dealReq.MaxBudget, err = floatQuery(c, "max_budget", dealReq.MaxBudget); err != nil {
			respondError(c, err)
			return
		}
		if dealReq.Guests, err = intQuery(c, "guests", dealReq.Guests); err != nil {
			respondError(c, err)
			return
		}
	}

	result, err := s.engine.FindDeals(dealReq)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.DealsFound == 0 {
		c.JSON(http.StatusOK, gin.H{
			"deals_found": 0,
			"message":     "No deals found. Try increasing budget or different area.",
			"suggestions": gin.H{
				"nearby_areas":          result.NearbyAreas,
				"budget_recommendation": result.BudgetRecommendation,
			},
		})
		return
	}

	deals := make([]gin.H, len(result.BestDeals))
	for i, d := range result.BestDeals {
		deals[i] = gin.H{
			"name":              d.Name,
			"price":             d.Price,
			"reviews_per_month": d.ReviewsPerMonth,
			"value_score":       scoring.Round2(d.ValueScore),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"deals_found":   result.DealsFound,
		"best_deals":    deals,
		"avg_price":     result.AvgPrice,
		"price_savings": result.Savings,
		"booking_tips": []string{
			fmt.Sprintf("Found %d options under $%g", result.DealsFound, dealReq.MaxBudget),
			fmt.Sprintf("Average savings: $%.2f", result.Savings),
			"Book early for better availability",
		},
	})
}

// handleTopHosts serves GET /api/top-hosts
func (s *Server) handleTopHosts(c *gin.Context) {
	rankings, err := s.engine.RankHosts()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rankings)
}

// Query parameter helpers with strict numeric validation.
func floatQuery(c *gin.Context, key string, def float64) (float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("parameter %q must be a number", key))
	}
	return v, nil
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput(fmt.Sprintf("parameter %q must be an integer", key))
	}
	return v, nil
}

func stringOr(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
