package weather

import (
	"time"
)

const (
	// NotRecommended is the recommendation when a threshold is exceeded.
	NotRecommended = "Launch not recommended due to weather conditions."
	// Acceptable is the recommendation when the weather is within limits.
	Acceptable = "Weather is acceptable for launch."
)

// Advisory is the launch weather advisory for a site and a date.
type Advisory struct {
	City           string  `json:"city"`
	LaunchDate     string  `json:"launch_date"`
	CloudCover     float64 `json:"cloud_cover"` // percent
	WindSpeed      float64 `json:"wind_speed"`  // m/s
	Description    string  `json:"description"`
	Recommendation string  `json:"launch_recommendation"`
	Go             bool    `json:"go"`
}

// WithinLimits returns whether the provided conditions are within the configured limits.
// Limits are inclusive: only strictly exceeding one forbids the launch.
func (c Config) WithinLimits(cloudCover, windSpeed float64) bool {
	return !(cloudCover > c.MaxCloudCover || windSpeed > c.MaxWindSpeed)
}

func (c *Client) advise(city string, date time.Time, entry forecastEntry) Advisory {
	adv := Advisory{
		City:       city,
		LaunchDate: date.Format("2006-01-02"),
		CloudCover: entry.Clouds.All,
		WindSpeed:  entry.Wind.Speed,
	}
	if len(entry.Weather) > 0 {
		adv.Description = entry.Weather[0].Description
	}
	adv.Go = c.cfg.WithinLimits(adv.CloudCover, adv.WindSpeed)
	if adv.Go {
		adv.Recommendation = Acceptable
	} else {
		adv.Recommendation = NotRecommended
	}
	return adv
}
