package fastparser

// String interning for common event header names.
//
// The Go compiler optimizes map lookups with string([]byte) keys
// to avoid allocating the temporary string (the mapaccess optimization).
// This means internHeaderName(someBytes) is zero-alloc for known names.

var headerNames = map[string]string{
	"Answer-State":                  "Answer-State",
	"Call-Direction":                "Call-Direction",
	"Caller-ANI":                    "Caller-ANI",
	"Caller-Caller-ID-Name":         "Caller-Caller-ID-Name",
	"Caller-Caller-ID-Number":       "Caller-Caller-ID-Number",
	"Caller-Destination-Number":     "Caller-Destination-Number",
	"Caller-Unique-ID":              "Caller-Unique-ID",
	"Channel-Call-State":            "Channel-Call-State",
	"Channel-Call-UUID":             "Channel-Call-UUID",
	"Channel-Name":                  "Channel-Name",
	"Channel-State":                 "Channel-State",
	"Channel-State-Number":          "Channel-State-Number",
	"Content-Length":                "Content-Length",
	"Content-Type":                  "Content-Type",
	"Core-UUID":                     "Core-UUID",
	"Event-Calling-File":            "Event-Calling-File",
	"Event-Calling-Function":        "Event-Calling-Function",
	"Event-Calling-Line-Number":     "Event-Calling-Line-Number",
	"Event-Date-GMT":                "Event-Date-GMT",
	"Event-Date-Local":              "Event-Date-Local",
	"Event-Date-Timestamp":          "Event-Date-Timestamp",
	"Event-Name":                    "Event-Name",
	"Event-Sequence":                "Event-Sequence",
	"Event-Subclass":                "Event-Subclass",
	"FreeSWITCH-Hostname":           "FreeSWITCH-Hostname",
	"FreeSWITCH-IPv4":               "FreeSWITCH-IPv4",
	"FreeSWITCH-IPv6":               "FreeSWITCH-IPv6",
	"FreeSWITCH-Switchname":         "FreeSWITCH-Switchname",
	"Job-Command":                   "Job-Command",
	"Job-UUID":                      "Job-UUID",
	"Log-File":                      "Log-File",
	"Log-Func":                      "Log-Func",
	"Log-Level":                     "Log-Level",
	"Log-Line":                      "Log-Line",
	"Presence-Call-Direction":       "Presence-Call-Direction",
	"Reply-Text":                    "Reply-Text",
	"Text-Channel":                  "Text-Channel",
	"Unique-ID":                     "Unique-ID",
	"User-Data":                     "User-Data",
	"variable_endpoint_disposition": "variable_endpoint_disposition",
	"variable_switch_r_sdp":         "variable_switch_r_sdp",
	"variable_uuid":                 "variable_uuid",
}

// internHeaderName returns an interned string for known header names, avoiding allocation.
func internHeaderName(b []byte) string {
	if s, ok := headerNames[string(b)]; ok {
		return s
	}
	return string(b)
}
