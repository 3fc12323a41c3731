package protocol

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestEncodeCarriesTagAndAllFields(t *testing.T) {
	data, err := Encode(NewAuthRequest("alice", "s3cret"))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("encoded request is not valid JSON: %v", err)
	}
	if m["type"] != TypeAuthRequest {
		t.Errorf("type = %v, want %q", m["type"], TypeAuthRequest)
	}
	if m["username"] != "alice" || m["password"] != "s3cret" {
		t.Errorf("fields = %v, want username/password present", m)
	}
}

func TestEncodeScanRequestKeepsFalseFields(t *testing.T) {
	data, err := Encode(NewScanRequest("folder", "/tmp", false))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// deep_scan must be present even when false: all fields of a tag
	// are part of the encoded form.
	if v, ok := m["deep_scan"]; !ok || v != false {
		t.Errorf("deep_scan = %v (present=%v), want false present", v, ok)
	}
}

func TestParseDocumentRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "not json", `"just a string"`, `[1,2,3]`} {
		if _, err := ParseDocument([]byte(raw)); err == nil {
			t.Errorf("ParseDocument(%q) = nil error, want failure", raw)
		}
	}
}

func TestDecodeServiceStatus(t *testing.T) {
	d, err := ParseDocument([]byte(`{"is_running":true,"real_time_protection":true,"auto_scan_enabled":false,"last_scan_time":0,"last_update_time":0,"database_version":5,"total_threats_blocked":3}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	got := DecodeServiceStatus(d)
	want := ServiceStatus{
		IsRunning:           true,
		RealTimeProtection:  true,
		DatabaseVersion:     5,
		TotalThreatsBlocked: 3,
	}
	if got != want {
		t.Errorf("DecodeServiceStatus() = %+v, want %+v", got, want)
	}
}

func TestDecodeServiceStatusDefaultsWhenEmpty(t *testing.T) {
	d, err := ParseDocument([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if got := DecodeServiceStatus(d); got != (ServiceStatus{}) {
		t.Errorf("DecodeServiceStatus({}) = %+v, want zero value", got)
	}
}

func TestDecodeIgnoresTypeMismatchedFields(t *testing.T) {
	d, err := ParseDocument([]byte(`{"is_running":"yes","database_version":"five"}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	got := DecodeServiceStatus(d)
	if got.IsRunning || got.DatabaseVersion != 0 {
		t.Errorf("mismatched fields decoded to %+v, want defaults", got)
	}
}

func TestDecodeSettingsMissingObjectFails(t *testing.T) {
	d, err := ParseDocument([]byte(`{"success":true}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if _, err := DecodeSettings(d); !errors.Is(err, ErrNoSettings) {
		t.Fatalf("DecodeSettings() error = %v, want ErrNoSettings", err)
	}
}

func TestDecodeSettingsFieldDefaults(t *testing.T) {
	d, err := ParseDocument([]byte(`{"settings":{}}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	got, err := DecodeSettings(d)
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	want := Settings{
		RealTimeProtection: true,
		ScanOnAccess:       true,
		AutoUpdate:         true,
		ScanTime:           2,
	}
	if got != want {
		t.Errorf("DecodeSettings({}) = %+v, want %+v", got, want)
	}
}

func TestDecodeSettingsKeepsExclusionPaths(t *testing.T) {
	d, err := ParseDocument([]byte(`{"settings":{"exclusion_paths":"C:\\a;C:\\b"}}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	got, err := DecodeSettings(d)
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	if got.ExclusionPaths != `C:\a;C:\b` {
		t.Errorf("ExclusionPaths = %q, want %q", got.ExclusionPaths, `C:\a;C:\b`)
	}
}

func TestDecodeScanResultPreservesThreatOrder(t *testing.T) {
	d, err := ParseDocument([]byte(`{"total_files":10,"total_threats":2,"threats":[
		{"file_path":"/a","threat_name":"Eicar-Test","threat_level":3,"file_size":68},
		{"file_path":"/b","threat_name":"Trojan.Gen","threat_level":9,"file_size":4096}
	]}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	got := DecodeScanResult(d)
	if got.TotalFiles != 10 || got.TotalThreats != 2 {
		t.Errorf("totals = %d/%d, want 10/2", got.TotalFiles, got.TotalThreats)
	}
	if len(got.Threats) != 2 {
		t.Fatalf("len(Threats) = %d, want 2", len(got.Threats))
	}
	if got.Threats[0].ThreatName != "Eicar-Test" || got.Threats[1].ThreatName != "Trojan.Gen" {
		t.Errorf("threat order = %q, %q", got.Threats[0].ThreatName, got.Threats[1].ThreatName)
	}
	if got.Threats[1].ThreatLevel != 9 || got.Threats[1].FileSize != 4096 {
		t.Errorf("threat[1] = %+v", got.Threats[1])
	}
}

func TestDecodeUpdateStatus(t *testing.T) {
	d, err := ParseDocument([]byte(`{"update_available":true,"current_version":5,"latest_version":7,"update_size":1048576,"update_description":"new signatures"}`))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	got := DecodeUpdateStatus(d)
	want := UpdateStatus{
		UpdateAvailable:   true,
		CurrentVersion:    5,
		LatestVersion:     7,
		UpdateSize:        1048576,
		UpdateDescription: "new signatures",
	}
	if got != want {
		t.Errorf("DecodeUpdateStatus() = %+v, want %+v", got, want)
	}
}
