package stubservice

import (
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/David2287/Client-App/internal/protocol"
)

func newTestServer() *Server {
	return New("unused.sock", zerolog.Nop())
}

func parse(t *testing.T, raw []byte) protocol.Document {
	t.Helper()
	doc, err := protocol.ParseDocument(raw)
	if err != nil {
		t.Fatalf("reply is not a JSON object: %v (%q)", err, raw)
	}
	return doc
}

func TestAuthKnownAndUnknownUser(t *testing.T) {
	s := newTestServer()
	s.AddUser("alice", "pw")

	doc := parse(t, s.handle([]byte(`{"type":"auth_request","username":"alice","password":"pw"}`)))
	if v, ok := doc.LookupBool("result"); !ok || !v {
		t.Errorf("auth with good password: result = %v (ok=%v), want true", v, ok)
	}

	doc = parse(t, s.handle([]byte(`{"type":"auth_request","username":"alice","password":"wrong"}`)))
	if v, ok := doc.LookupBool("result"); !ok || v {
		t.Errorf("auth with bad password: result = %v (ok=%v), want false", v, ok)
	}

	doc = parse(t, s.handle([]byte(`{"type":"auth_request","username":"mallory","password":"pw"}`)))
	if _, ok := doc.LookupBool("result"); ok {
		t.Error("auth for unknown user should not carry a boolean result")
	}
}

func TestActivateThenCheckLicense(t *testing.T) {
	s := newTestServer()

	doc := parse(t, s.handle([]byte(`{"type":"license_check","username":"alice"}`)))
	if protocol.DecodeLicenseInfo(doc).IsValid {
		t.Fatal("license valid before activation")
	}

	doc = parse(t, s.handle([]byte(`{"type":"activate_request","username":"alice","activation_key":"KEY-1"}`)))
	res := protocol.DecodeActivationResult(doc)
	if !res.Activated {
		t.Fatalf("activation failed: %+v", res)
	}

	doc = parse(t, s.handle([]byte(`{"type":"license_check","username":"alice"}`)))
	info := protocol.DecodeLicenseInfo(doc)
	if !info.IsValid || info.ExpiresAt != res.ExpiresAt {
		t.Errorf("license after activation = %+v, want valid with expiry %d", info, res.ExpiresAt)
	}
}

func TestActivateRejectsEmptyKey(t *testing.T) {
	s := newTestServer()
	doc := parse(t, s.handle([]byte(`{"type":"activate_request","username":"alice","activation_key":""}`)))
	if protocol.DecodeActivationResult(doc).Activated {
		t.Error("empty activation key accepted")
	}
}

func TestSettingsRoundTripThroughHandler(t *testing.T) {
	s := newTestServer()

	set := []byte(`{"type":"settings_set","settings":{"real_time_protection":false,"scan_on_access":false,"scan_archives":true,"auto_update":false,"scan_schedule":2,"scan_time":23,"quarantine_path":"/q","exclusion_paths":"C:\\a;C:\\b"}}`)
	doc := parse(t, s.handle(set))
	if !doc.Bool("success", false) {
		t.Fatal("settings_set not acknowledged")
	}

	doc = parse(t, s.handle([]byte(`{"type":"settings_get"}`)))
	got, err := protocol.DecodeSettings(doc)
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	want := protocol.Settings{
		ScanArchives:   true,
		ScanSchedule:   2,
		ScanTime:       23,
		QuarantinePath: "/q",
		ExclusionPaths: `C:\a;C:\b`,
	}
	if got != want {
		t.Errorf("settings round trip = %+v, want %+v", got, want)
	}
}

func TestScanAssignsDistinctIDs(t *testing.T) {
	s := newTestServer()
	first := parse(t, s.handle([]byte(`{"type":"scan_request","scan_type":"folder","path":"/a","deep_scan":false}`))).Str("scan_id", "")
	second := parse(t, s.handle([]byte(`{"type":"scan_request","scan_type":"folder","path":"/b","deep_scan":true}`))).Str("scan_id", "")
	if first == "" || second == "" || first == second {
		t.Errorf("scan ids = %q, %q, want distinct non-empty", first, second)
	}
}

func TestShutdownMarksServiceStopped(t *testing.T) {
	s := newTestServer()
	doc := parse(t, s.handle([]byte(`{"type":"shutdown_request"}`)))
	if !doc.Bool("success", false) {
		t.Fatal("shutdown not acknowledged")
	}
	doc = parse(t, s.handle([]byte(`{"type":"status_request"}`)))
	if protocol.DecodeServiceStatus(doc).IsRunning {
		t.Error("status still running after shutdown")
	}
}

func TestUnknownTypeGetsMessageOnly(t *testing.T) {
	s := newTestServer()
	doc := parse(t, s.handle([]byte(`{"type":"fiddle"}`)))
	if doc.Str("message", "") == "" {
		t.Error("unknown request type should carry a message")
	}
}

func TestHandleConnServesSequentialRequests(t *testing.T) {
	s := newTestServer()
	clientSide, serverSide := net.Pipe()
	defer clientSide.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.handleConn(serverSide)
	}()

	buf := make([]byte, readBufferSize)
	for _, req := range []string{`{"type":"status_request"}`, `{"type":"settings_get"}`} {
		if _, err := clientSide.Write([]byte(req)); err != nil {
			t.Fatalf("write: %v", err)
		}
		n, err := clientSide.Read(buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		parse(t, buf[:n])
	}

	clientSide.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handleConn did not return after client hangup")
	}
}
