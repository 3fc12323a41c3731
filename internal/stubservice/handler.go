package stubservice

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/David2287/Client-App/internal/protocol"
)

func (s *Server) handle(req []byte) []byte {
	doc, err := protocol.ParseDocument(req)
	if err != nil {
		s.log.Warn().Err(err).Msg("unparsable request")
		return marshal(map[string]any{"message": "malformed request"})
	}
	typ := doc.Str("type", "")
	s.log.Debug().Str("type", typ).Msg("handling request")

	s.mu.Lock()
	defer s.mu.Unlock()

	switch typ {
	case protocol.TypeAuthRequest:
		return s.handleAuth(doc)
	case protocol.TypeLicenseCheck:
		return s.handleLicenseCheck(doc)
	case protocol.TypeActivateRequest:
		return s.handleActivate(doc)
	case protocol.TypeScanRequest:
		return s.handleScan(doc)
	case protocol.TypeStatusRequest:
		return marshal(s.status)
	case protocol.TypeSettingsGet:
		return marshal(map[string]any{"settings": s.settings})
	case protocol.TypeSettingsSet:
		return s.handleSettingsSet(doc)
	case protocol.TypeUpdateCheck:
		return marshal(protocol.UpdateStatus{
			CurrentVersion: s.status.DatabaseVersion,
			LatestVersion:  s.status.DatabaseVersion,
		})
	case protocol.TypeShutdownRequest:
		s.status.IsRunning = false
		return marshal(map[string]any{"success": true})
	}
	return marshal(map[string]any{"message": "unknown request type"})
}

func (s *Server) handleAuth(doc protocol.Document) []byte {
	username := doc.Str("username", "")
	password := doc.Str("password", "")
	stored, ok := s.users[username]
	if !ok {
		return marshal(map[string]any{"result": false, "message": "unknown user"})
	}
	return marshal(map[string]any{"result": stored == password})
}

func (s *Server) handleLicenseCheck(doc protocol.Document) []byte {
	username := doc.Str("username", "")
	lic, ok := s.licenses[username]
	if !ok {
		return marshal(protocol.LicenseInfo{Message: "no license"})
	}
	return marshal(protocol.LicenseInfo{
		IsValid:     true,
		ExpiresAt:   lic.expiresAt,
		LicenseType: lic.licenseType,
		Message:     "license valid",
	})
}

func (s *Server) handleActivate(doc protocol.Document) []byte {
	username := doc.Str("username", "")
	key := doc.Str("activation_key", "")
	if username == "" || key == "" {
		return marshal(protocol.ActivationResult{Message: "invalid activation key"})
	}
	lic := license{
		expiresAt:   uint64(time.Now().AddDate(1, 0, 0).Unix()),
		licenseType: "standard",
	}
	s.licenses[username] = lic
	return marshal(protocol.ActivationResult{
		Activated: true,
		ExpiresAt: lic.expiresAt,
		Message:   "activated",
	})
}

func (s *Server) handleScan(doc protocol.Document) []byte {
	s.status.LastScanTime = uint64(time.Now().Unix())
	return marshal(map[string]any{"scan_id": uuid.NewString()})
}

func (s *Server) handleSettingsSet(doc protocol.Document) []byte {
	settings, err := protocol.DecodeSettings(doc)
	if err != nil {
		return marshal(map[string]any{"success": false, "message": "no settings in request"})
	}
	s.settings = settings
	return marshal(map[string]any{"success": true})
}

func marshal(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"message":"internal error"}`)
	}
	return data
}
