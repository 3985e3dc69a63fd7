package model

// AlertRecord is one entry of the intrusion-detection alert log (eve.json).
// Only the fields the dashboard reads are kept; the rest of the record is ignored.
type AlertRecord struct {
	Timestamp string     `json:"timestamp,omitempty"`
	Proto     string     `json:"proto,omitempty"`
	SrcIP     string     `json:"src_ip,omitempty"`
	DestIP    string     `json:"dest_ip,omitempty"`
	EventType string     `json:"event_type,omitempty"`
	Alert     *AlertInfo `json:"alert,omitempty"`
}

// AlertInfo is present only on records that actually raised an alert.
type AlertInfo struct {
	Severity  int    `json:"severity"`
	Signature string `json:"signature,omitempty"`
	Category  string `json:"category,omitempty"`
}

// HasAlert reports whether the record carries an alert block.
func (r AlertRecord) HasAlert() bool {
	return r.Alert != nil
}

// IngestedAlert is a record tailed from an eve file, tagged with that file.
type IngestedAlert struct {
	Source string      `json:"source"`
	Record AlertRecord `json:"record"`
}
