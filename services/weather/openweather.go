package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"bistrovoice/models"
	"bistrovoice/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"
	cacheTTL       = 10 * time.Minute
)

// OpenWeatherService looks up the 5-day/3-hour forecast series for the
// restaurant's fixed coordinates and picks the sample nearest the reservation
// time. The raw series is cached in Redis so bursts of bookings share one
// upstream call.
type OpenWeatherService struct {
	apiKey  string
	lat     float64
	lon     float64
	baseURL string
	client  *http.Client
	cache   *redis.Client
}

// NewOpenWeatherService builds the forecast service. cache may be nil, in
// which case every lookup hits the API.
func NewOpenWeatherService(apiKey string, lat, lon float64, cache *redis.Client) *OpenWeatherService {
	return &OpenWeatherService{
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache,
	}
}

// forecastSample mirrors one entry of the OpenWeather forecast list.
type forecastSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	DtTxt string `json:"dt_txt"`
}

type forecastSeries struct {
	List []forecastSample `json:"list"`
}

// Forecast returns the weather summary for target, or the Unknown sentinel
// when the series cannot be fetched.
func (s *OpenWeatherService) Forecast(ctx context.Context, target time.Time) models.ForecastResult {
	logger := utils.GetLogger()

	series, err := s.fetchSeries(ctx)
	if err != nil {
		logger.Warn("forecast lookup failed, falling back to indoor seating", zap.Error(err))
		return models.UnknownForecast()
	}
	if len(series.List) == 0 {
		logger.Warn("forecast series was empty, falling back to indoor seating")
		return models.UnknownForecast()
	}

	sample := nearestSample(series.List, target)
	return resultFromSample(sample)
}

func (s *OpenWeatherService) fetchSeries(ctx context.Context) (*forecastSeries, error) {
	cacheKey := fmt.Sprintf("forecast:%.4f,%.4f", s.lat, s.lon)

	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached forecastSeries
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=metric&appid=%s", s.baseURL, s.lat, s.lon, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast API returned status %d", resp.StatusCode)
	}

	var series forecastSeries
	if err := json.NewDecoder(resp.Body).Decode(&series); err != nil {
		return nil, fmt.Errorf("decoding response failed: %w", err)
	}

	if s.cache != nil {
		if data, err := json.Marshal(series); err == nil {
			// Cache failures only cost us the next upstream call.
			s.cache.Set(ctx, cacheKey, data, cacheTTL)
		}
	}
	return &series, nil
}

// nearestSample picks the entry with minimum absolute distance to target.
// Strict comparison keeps the earliest sample on an exact tie.
func nearestSample(list []forecastSample, target time.Time) forecastSample {
	ts := target.Unix()
	best := list[0]
	for _, sample := range list[1:] {
		if absDiff(sample.Dt, ts) < absDiff(best.Dt, ts) {
			best = sample
		}
	}
	return best
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}

func resultFromSample(sample forecastSample) models.ForecastResult {
	if len(sample.Weather) == 0 {
		return models.UnknownForecast()
	}
	condition := sample.Weather[0].Main
	return models.ForecastResult{
		Condition:        condition,
		Description:      sample.Weather[0].Description,
		Temperature:      sample.Main.Temp,
		SuggestedSeating: SuggestSeating(condition),
		SourceTime:       sample.DtTxt,
	}
}

// SuggestSeating maps a weather category to a seating assignment. Any form of
// precipitation, and the Unknown fallback, mean indoor; everything else is
// outdoor.
func SuggestSeating(condition string) string {
	switch condition {
	case "Rain", "Thunderstorm", "Drizzle", "Unknown":
		return models.SeatingIndoor
	default:
		return models.SeatingOutdoor
	}
}
