package fixture

// StatusHealthy is the only status the health endpoint reports
const StatusHealthy = "healthy"

// HealthPath is the liveness endpoint, every other path gets the greeting
const HealthPath = "/health"

// HealthResponse is the body served on HealthPath
type HealthResponse struct {
	Status    string `json:"status"`
	App       string `json:"app"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// GreetingResponse is the body served on every path other than HealthPath
type GreetingResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
