//go:build e2e

package quote_test

import (
	"net/http"
	"testing"
	"time"

	"parking-pricing/internal/domain/rate"
	"parking-pricing/internal/handler/dto/response"
	"parking-pricing/tests/common/authtest"
	"parking-pricing/tests/common/builder"
	"parking-pricing/tests/common/dbtest"
	"parking-pricing/tests/common/httptest"
	"parking-pricing/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingQuoteURL = "/api/quotes/bookings"
	sessionQuoteURL = "/api/quotes/sessions"
)

type QuoteSuite struct {
	e2e.SharedSuite

	jwtHelper *authtest.JWTHelper
}

func (s *QuoteSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *QuoteSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestQuoteSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(QuoteSuite))
}

func (s *QuoteSuite) token(group rate.UserGroup) string {
	return s.jwtHelper.GenerateToken(s.T(), uuid.New(), group)
}

// seeds an hourly plan (100/h, 60-minute increments, 10-minute grace)
// assigned to the Main Garage lot and returns the lot and plan IDs.
func (s *QuoteSuite) seedHourlyLot(t *testing.T) (uuid.UUID, uuid.UUID) {
	t.Helper()

	lotID := dbtest.LotIDByName(t, s.DB, "Main Garage")
	planID := builder.NewRatePlanBuilder().
		With(func(b *builder.RatePlanBuilder) {
			b.GraceMinutes = builder.Int32P(10)
			b.IncrementMinutes = builder.Int32P(60)
		}).
		Insert(t, s.DB)
	builder.NewRateRuleBuilder(planID).Insert(t, s.DB)
	builder.NewLotAssignmentBuilder(lotID, planID).Insert(t, s.DB)
	return lotID, planID
}

func jst(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

// =============================================================================
// TestBookingQuote - advance quote API tests
// =============================================================================

func (s *QuoteSuite) TestBookingQuote() {
	s.Run("Normal case: hourly plan rounds up to the next increment", func() {
		t := s.T()

		lotID, planID := s.seedHourlyLot(t)
		start := time.Date(2026, 3, 2, 10, 0, 0, 0, jst(t))

		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.LotID = &lotID
				b.StartTime = start
				b.EndTime = start.Add(90 * time.Minute)
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, s.token(rate.GroupRegular))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, planID, actual.RatePlanID)
		require.Equal(t, "JPY", actual.Currency)
		// 90 min rounds to 120, two started hours at 100
		require.Equal(t, int64(200), actual.AmountMinor)
		require.JSONEq(t, `{"2026-03-02 10:00-11:30": 200}`, string(actual.Breakdown))
	})

	s.Run("Normal case: visit within grace period is free", func() {
		t := s.T()

		lotID, planID := s.seedHourlyLot(t)
		start := time.Date(2026, 3, 2, 10, 0, 0, 0, jst(t))

		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.LotID = &lotID
				b.StartTime = start
				b.EndTime = start.Add(10 * time.Minute)
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, s.token(rate.GroupRegular))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, planID, actual.RatePlanID)
		require.Equal(t, int64(0), actual.AmountMinor)
		require.JSONEq(t, `{}`, string(actual.Breakdown))
	})

	s.Run("Normal case: space override wins over the lot assignment", func() {
		t := s.T()

		s.seedHourlyLot(t)
		spaceID := dbtest.SpaceIDByLabel(t, s.DB, "A-01")

		flatPlanID := builder.NewRatePlanBuilder().
			With(func(b *builder.RatePlanBuilder) {
				b.Name = "EV Flat"
				b.Type = rate.TypeFlatPerEntry
			}).
			Insert(t, s.DB)
		builder.NewRateRuleBuilder(flatPlanID).
			With(func(b *builder.RateRuleBuilder) {
				b.PricePerHourMinor = nil
				b.PriceFlatMinor = builder.Int64P(300)
			}).
			Insert(t, s.DB)
		builder.NewSpaceOverrideBuilder(spaceID, flatPlanID).Insert(t, s.DB)

		start := time.Date(2026, 3, 2, 10, 0, 0, 0, jst(t))
		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.SpaceID = &spaceID
				b.StartTime = start
				b.EndTime = start.Add(3 * time.Hour)
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, s.token(rate.GroupRegular))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, flatPlanID, actual.RatePlanID)
		require.Equal(t, "EV Flat", actual.RatePlanName)
		require.Equal(t, int64(300), actual.AmountMinor)
	})

	s.Run("Normal case: daily cap collapses a day into one line", func() {
		t := s.T()

		lotID := dbtest.LotIDByName(t, s.DB, "Main Garage")
		planID := builder.NewRatePlanBuilder().
			With(func(b *builder.RatePlanBuilder) {
				b.DailyCapMinor = builder.Int64P(600)
			}).
			Insert(t, s.DB)
		builder.NewRateRuleBuilder(planID).Insert(t, s.DB)
		builder.NewLotAssignmentBuilder(lotID, planID).Insert(t, s.DB)

		start := time.Date(2026, 3, 2, 8, 0, 0, 0, jst(t))
		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.LotID = &lotID
				b.StartTime = start
				b.EndTime = start.Add(8 * time.Hour)
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, s.token(rate.GroupRegular))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, int64(600), actual.AmountMinor)
		require.JSONEq(t, `{"Daily cap 2026-03-02": 600}`, string(actual.Breakdown))
	})

	s.Run("Error case: standalone space without an override is 404", func() {
		t := s.T()

		spaceID := dbtest.SpaceIDByLabel(t, s.DB, "Street Bay 7")
		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.SpaceID = &spaceID
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, s.token(rate.GroupRegular))
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "standalone space")
	})

	s.Run("Error case: neither lot nor space is 400", func() {
		t := s.T()

		reqBody := builder.NewQuoteRequestBuilder().BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, s.token(rate.GroupRegular))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "lot_id or space_id")
	})

	s.Run("Error case: end before start is 400", func() {
		t := s.T()

		lotID, _ := s.seedHourlyLot(t)
		start := time.Date(2026, 3, 2, 10, 0, 0, 0, jst(t))
		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.LotID = &lotID
				b.StartTime = start
				b.EndTime = start.Add(-time.Minute)
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, s.token(rate.GroupRegular))
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "after start time")
	})

	s.Run("Error case: missing token is 401", func() {
		t := s.T()

		reqBody := builder.NewQuoteRequestBuilder().BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})

	s.Run("Error case: expired token is 401", func() {
		t := s.T()

		token := s.jwtHelper.CreateExpiredToken(t, uuid.New(), rate.GroupRegular)
		reqBody := builder.NewQuoteRequestBuilder().BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingQuoteURL, reqBody, token)
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestSessionQuote - in-progress session quote API tests
// =============================================================================

func (s *QuoteSuite) TestSessionQuote() {
	s.Run("Normal case: session quote uses the caller's token group", func() {
		t := s.T()

		lotID := dbtest.LotIDByName(t, s.DB, "Main Garage")
		planID := builder.NewRatePlanBuilder().Insert(t, s.DB)
		// staff rule first, generic fallback second
		builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 1
				b.UserGroup = builder.GroupP(rate.GroupStaff)
				b.PricePerHourMinor = builder.Int64P(50)
			}).
			Insert(t, s.DB)
		builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 2
				b.PricePerHourMinor = builder.Int64P(100)
			}).
			Insert(t, s.DB)
		builder.NewLotAssignmentBuilder(lotID, planID).Insert(t, s.DB)

		start := time.Date(2026, 3, 2, 10, 0, 0, 0, jst(t))
		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.LotID = &lotID
				b.StartTime = start
				b.EndTime = start.Add(time.Hour)
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionQuoteURL, reqBody, s.token(rate.GroupStaff))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, int64(50), actual.AmountMinor)
	})

	s.Run("Normal case: explicit user_group in the body overrides the token", func() {
		t := s.T()

		lotID := dbtest.LotIDByName(t, s.DB, "Main Garage")
		planID := builder.NewRatePlanBuilder().Insert(t, s.DB)
		builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 1
				b.UserGroup = builder.GroupP(rate.GroupResident)
				b.PricePerHourMinor = builder.Int64P(30)
			}).
			Insert(t, s.DB)
		builder.NewRateRuleBuilder(planID).
			With(func(b *builder.RateRuleBuilder) {
				b.Position = 2
				b.PricePerHourMinor = builder.Int64P(100)
			}).
			Insert(t, s.DB)
		builder.NewLotAssignmentBuilder(lotID, planID).Insert(t, s.DB)

		start := time.Date(2026, 3, 2, 10, 0, 0, 0, jst(t))
		resident := string(rate.GroupResident)
		reqBody := builder.NewQuoteRequestBuilder().
			With(func(b *builder.QuoteRequestBuilder) {
				b.LotID = &lotID
				b.UserGroup = &resident
				b.StartTime = start
				b.EndTime = start.Add(time.Hour)
			}).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sessionQuoteURL, reqBody, s.token(rate.GroupRegular))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var actual response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))
		require.Equal(t, int64(30), actual.AmountMinor)
	})
}
