// Package avclient is the synchronous request/response client for the
// antivirus service. Each operation performs exactly one exchange on
// the single pipe connection the client owns.
package avclient

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/David2287/Client-App/internal/pipe"
	"github.com/David2287/Client-App/internal/protocol"
)

// transport is what the client needs from the pipe connection.
type transport interface {
	Exchange(req []byte) ([]byte, error)
	Close() error
}

var openPipe = func() (transport, error) {
	return pipe.Open()
}

// Client talks to the antivirus service. It owns one connection for
// its whole lifetime; the transport serializes concurrent callers, so
// sharing a Client is safe but calls on it are strictly sequential.
type Client struct {
	conn transport
	log  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger for per-exchange debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New opens the connection to the service. A single attempt: if the
// endpoint is missing or unreachable the returned error matches
// ErrConnectionFailed and no operations are possible.
func New(opts ...Option) (*Client, error) {
	c := &Client{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}

	conn, err := openPipe()
	if err != nil {
		return nil, &Error{Kind: KindConnection, Op: "connect", Err: err}
	}
	c.conn = conn
	c.log.Debug().Msg("connected to antivirus service")
	return c, nil
}

// Close releases the connection. Idempotent.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Authenticate verifies credentials and returns the service's verdict.
// A response without a boolean result field is a service error carrying
// the service's message.
func (c *Client) Authenticate(username, password string) (bool, error) {
	const op = "authenticate"
	doc, err := c.exchange(op, protocol.NewAuthRequest(username, password))
	if err != nil {
		return false, err
	}
	result, ok := doc.LookupBool("result")
	if !ok {
		return false, &Error{Kind: KindService, Op: op, Msg: doc.Str("message", "authentication failed")}
	}
	return result, nil
}

// CheckLicense returns the license state for a user.
func (c *Client) CheckLicense(username string) (protocol.LicenseInfo, error) {
	doc, err := c.exchange("check_license", protocol.NewLicenseCheck(username))
	if err != nil {
		return protocol.LicenseInfo{}, err
	}
	return protocol.DecodeLicenseInfo(doc), nil
}

// ActivateLicense redeems an activation key for a user.
func (c *Client) ActivateLicense(username, activationKey string) (protocol.ActivationResult, error) {
	doc, err := c.exchange("activate_license", protocol.NewActivateRequest(username, activationKey))
	if err != nil {
		return protocol.ActivationResult{}, err
	}
	return protocol.DecodeActivationResult(doc), nil
}

// StartScan asks the service to begin a scan and returns the scan
// identifier, or empty string if the service did not assign one.
func (c *Client) StartScan(scanType, path string, deepScan bool) (string, error) {
	doc, err := c.exchange("start_scan", protocol.NewScanRequest(scanType, path, deepScan))
	if err != nil {
		return "", err
	}
	return doc.Str("scan_id", ""), nil
}

// GetStatus returns the current service status. Absent fields decode
// to zero values, never an error.
func (c *Client) GetStatus() (protocol.ServiceStatus, error) {
	doc, err := c.exchange("get_status", protocol.NewStatusRequest())
	if err != nil {
		return protocol.ServiceStatus{}, err
	}
	return protocol.DecodeServiceStatus(doc), nil
}

// GetSettings returns the service settings. A response without a
// settings object is a service error, not a defaulted document.
func (c *Client) GetSettings() (protocol.Settings, error) {
	const op = "get_settings"
	doc, err := c.exchange(op, protocol.NewSettingsGet())
	if err != nil {
		return protocol.Settings{}, err
	}
	settings, err := protocol.DecodeSettings(doc)
	if err != nil {
		if errors.Is(err, protocol.ErrNoSettings) {
			return protocol.Settings{}, &Error{Kind: KindService, Op: op, Msg: "no settings in response"}
		}
		return protocol.Settings{}, &Error{Kind: KindService, Op: op, Err: err}
	}
	return settings, nil
}

// UpdateSettings sends the full settings document to the service and
// reports whether it accepted it.
func (c *Client) UpdateSettings(settings protocol.Settings) (bool, error) {
	doc, err := c.exchange("update_settings", protocol.NewSettingsSet(settings))
	if err != nil {
		return false, err
	}
	return doc.Bool("success", false), nil
}

// CheckUpdates asks whether a newer signature database is available.
func (c *Client) CheckUpdates() (protocol.UpdateStatus, error) {
	doc, err := c.exchange("check_updates", protocol.NewUpdateCheck())
	if err != nil {
		return protocol.UpdateStatus{}, err
	}
	return protocol.DecodeUpdateStatus(doc), nil
}

// ShutdownService asks the service to stop and reports whether it
// acknowledged.
func (c *Client) ShutdownService() (bool, error) {
	doc, err := c.exchange("shutdown_service", protocol.NewShutdownRequest())
	if err != nil {
		return false, err
	}
	return doc.Bool("success", false), nil
}

// exchange encodes one request, performs one transport exchange, and
// parses the reply. The call ID exists only in logs, never on the wire.
func (c *Client) exchange(op string, req any) (protocol.Document, error) {
	data, err := protocol.Encode(req)
	if err != nil {
		return protocol.Document{}, &Error{Kind: KindSerialization, Op: op, Err: err}
	}

	callID := uuid.NewString()
	c.log.Debug().Str("op", op).Str("call_id", callID).Int("request_bytes", len(data)).Msg("sending request")

	raw, err := c.conn.Exchange(data)
	if err != nil {
		return protocol.Document{}, &Error{Kind: KindCommunication, Op: op, Err: err}
	}

	doc, err := protocol.ParseDocument(raw)
	if err != nil {
		return protocol.Document{}, &Error{Kind: KindSerialization, Op: op, Err: err}
	}
	c.log.Debug().Str("op", op).Str("call_id", callID).Int("response_bytes", len(raw)).Msg("received response")
	return doc, nil
}
