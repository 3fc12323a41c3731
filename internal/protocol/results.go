package protocol

// LicenseInfo is the decoded reply to a license_check.
type LicenseInfo struct {
	IsValid     bool   `json:"is_valid"`
	ExpiresAt   uint64 `json:"expires_at"`
	LicenseType string `json:"license_type"`
	Message     string `json:"message"`
}

// ActivationResult is the decoded reply to an activate_request.
type ActivationResult struct {
	Activated bool   `json:"activated"`
	ExpiresAt uint64 `json:"expires_at"`
	Message   string `json:"message"`
}

// ServiceStatus is the decoded reply to a status_request.
type ServiceStatus struct {
	IsRunning           bool   `json:"is_running"`
	RealTimeProtection  bool   `json:"real_time_protection"`
	AutoScanEnabled     bool   `json:"auto_scan_enabled"`
	LastScanTime        uint64 `json:"last_scan_time"`
	LastUpdateTime      uint64 `json:"last_update_time"`
	DatabaseVersion     uint32 `json:"database_version"`
	TotalThreatsBlocked uint32 `json:"total_threats_blocked"`
}

// Settings is the service configuration document. ExclusionPaths is a
// semicolon-joined list.
type Settings struct {
	RealTimeProtection bool   `json:"real_time_protection"`
	ScanOnAccess       bool   `json:"scan_on_access"`
	ScanArchives       bool   `json:"scan_archives"`
	AutoUpdate         bool   `json:"auto_update"`
	ScanSchedule       uint32 `json:"scan_schedule"` // 0=disabled, 1=daily, 2=weekly
	ScanTime           uint32 `json:"scan_time"`     // hour of day, 0-23
	QuarantinePath     string `json:"quarantine_path"`
	ExclusionPaths     string `json:"exclusion_paths"`
}

// ThreatInfo describes one detected threat.
type ThreatInfo struct {
	FilePath    string `json:"file_path"`
	ThreatName  string `json:"threat_name"`
	ThreatLevel uint32 `json:"threat_level"` // 1-10 severity
	FileSize    uint64 `json:"file_size"`
}

// ScanProgress is a point-in-time snapshot of a running scan.
type ScanProgress struct {
	FilesScanned    uint32 `json:"files_scanned"`
	ThreatsFound    uint32 `json:"threats_found"`
	ProgressPercent uint32 `json:"progress_percent"`
	CurrentFile     string `json:"current_file"`
}

// ScanResult summarizes a finished scan. Threats preserves the order
// the service reported them in.
type ScanResult struct {
	TotalFiles   uint32       `json:"total_files"`
	TotalThreats uint32       `json:"total_threats"`
	Threats      []ThreatInfo `json:"threats"`
}

// UpdateStatus is the decoded reply to an update_check.
type UpdateStatus struct {
	UpdateAvailable   bool   `json:"update_available"`
	CurrentVersion    uint32 `json:"current_version"`
	LatestVersion     uint32 `json:"latest_version"`
	UpdateSize        uint64 `json:"update_size"`
	UpdateDescription string `json:"update_description"`
}
