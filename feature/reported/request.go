package reported

// Wire fields of a reported update.
const (
	FieldReportedVersion = "rptdVrs"
	FieldDesiredVersion  = "dsrdVrs"
	FieldRecurring       = "rcrEvntsCfg"
	FieldOneTime         = "oneEvntsCfg"
	FieldRecurringCount  = "rcrEvntsCfgCnt"
	FieldOneTimeCount    = "oneEvntsCfgCnt"
	FieldSystemConfig    = "sysCfg"
	FieldOpsConfig       = "opsCfg"
	FieldNetworkConfig   = "ntwrkCfg"
	FieldTimezoneOffset  = "tzOfst"
	FieldOps             = "ops"
)

// Message types that are routine telemetry rather than configuration.
const (
	MsgTypeNormalOperation  = 201
	MsgTypeNormalOperation2 = 202
)

// No-op results for messages without configuration.
const (
	MessageNormalOperation = "Normal Operation message without any config data."
	MessageNoConfig        = "No config data found."
)

// wireOnly fields are stripped before the payload is stored.
var wireOnly = []string{FieldRecurringCount, FieldOneTimeCount, FieldOps}

// Request is a reported-state update.
type Request struct {
	// DeviceID identifies the shadow (astId).
	DeviceID string `json:"astId"`
	// Env is the environment the device belongs to. Empty falls back to the
	// configured default.
	Env         string `json:"env,omitempty"`
	ClientToken string `json:"clientToken,omitempty"`
	// ReportedVersion takes precedence over msgData.rptdVrs.
	ReportedVersion *int `json:"rptdVrs,omitempty"`
	// DesiredVersion is used only when msgData carries none.
	DesiredVersion *int `json:"dsrdVrs,omitempty"`
	MsgType        *int `json:"msgTyp,omitempty"`
	// MsgData is the reported configuration. When absent it is assembled from
	// the top-level config blocks below (boot-time message shape).
	MsgData       map[string]any `json:"msgData,omitempty"`
	SystemConfig  map[string]any `json:"sysCfg,omitempty"`
	OpsConfig     map[string]any `json:"opsCfg,omitempty"`
	NetworkConfig map[string]any `json:"ntwrkCfg,omitempty"`
}

// inferMsgData assembles a payload from the top-level blocks. ok is false
// when the request carries no configuration at all.
func (r Request) inferMsgData() (map[string]any, bool) {
	if r.SystemConfig == nil && r.OpsConfig == nil && r.NetworkConfig == nil && r.ReportedVersion == nil {
		return nil, false
	}
	msg := make(map[string]any, 4)
	if r.SystemConfig != nil {
		msg[FieldSystemConfig] = r.SystemConfig
	}
	if r.OpsConfig != nil {
		msg[FieldOpsConfig] = r.OpsConfig
	}
	if r.NetworkConfig != nil {
		msg[FieldNetworkConfig] = r.NetworkConfig
	}
	if r.ReportedVersion != nil {
		msg[FieldReportedVersion] = *r.ReportedVersion
	}
	return msg, true
}

func (r Request) isNormalOperation() bool {
	if r.MsgType == nil {
		return false
	}
	return *r.MsgType == MsgTypeNormalOperation || *r.MsgType == MsgTypeNormalOperation2
}
