package probe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Requests int           // Number of GET / requests to send
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	Min      int           // Expected inclusive lower operand bound
	Max      int           // Expected inclusive upper operand bound
	Verbose  bool          // Log every violation
}

// Sample is one parsed response body.
type Sample struct {
	Left  int
	Right int
	Sum   int
}

// Stats holds probe statistics.
type Stats struct {
	Requests   int
	Successful int
	Failed     int
	Violations []string
	MinSeen    int
	MaxSeen    int
	Distinct   int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}
