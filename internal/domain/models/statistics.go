package models

// Statistics is the aggregate dashboard snapshot. It is computed fresh on
// every call; nothing here is cached.
type Statistics struct {
	TotalRequests      int    `json:"totalRequests"`
	PendingRequests    int    `json:"pendingRequests"`
	ApprovedRequests   int    `json:"approvedRequests"`
	RejectedRequests   int    `json:"rejectedRequests"`
	LeftAtGateRequests int    `json:"leftAtGateRequests"`
	ActiveGuards       int    `json:"activeGuards"`
	TotalGuards        int    `json:"totalGuards"`
	ActiveResidents    int    `json:"activeResidents"`
	TodayRequests      int    `json:"todayRequests"`
	Uptime             string `json:"uptime"`
}

// UptimeDisplay is the constant uptime figure shown on the admin dashboard.
const UptimeDisplay = "99.8%"
