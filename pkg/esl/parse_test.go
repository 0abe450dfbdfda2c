package esl

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const heartbeatEvent = "Event-Name: HEARTBEAT\n" +
	"Core-UUID: cb2d5146-9a99-11e4-9291-092b1a87b375\n" +
	"FreeSWITCH-Hostname: evoluxdev\n" +
	"FreeSWITCH-Switchname: freeswitch\n" +
	"FreeSWITCH-IPv4: 172.16.7.47\n" +
	"FreeSWITCH-IPv6: %3A%3A1"

const logLine = "2016-12-28 10:34:08.398763 [DEBUG] switch_core_state_machine.c:710 (sofia/internal/7071@devitor) State DESTROY going to sleep"

// logEventHead is a log/data header block announcing 126 bytes of body.
const logEventHead = "Content-Type: log/data\n" +
	"Content-Length: 126\n" +
	"Log-Level: 7\n" +
	"Text-Channel: 3\n" +
	"Log-File: switch_core_state_machine.c\n" +
	"Log-Func: switch_core_session_destroy_state\n" +
	"Log-Line: 710\n" +
	"User-Data: 4c882cc4-cd02-11e6-8b82-395b501876f9\n" +
	"\n"

const logEvent = logEventHead + logLine + "\n"

const sdpValue = "v=0\n" +
	"o=- 3631463817 3631463817 IN IP4 172.16.7.70\n" +
	"s=pjmedia\n" +
	"b=AS:84\n" +
	"t=0 0\n" +
	"a=X-nat:0\n" +
	"m=audio 4016 RTP/AVP 103 102 104 109 3 0 8 9 101\n" +
	"c=IN IP4 172.16.7.70\n" +
	"b=AS:64000\n" +
	"a=rtpmap:103 speex/16000\n" +
	"a=rtpmap:102 speex/8000\n" +
	"a=rtpmap:104 speex/32000\n" +
	"a=rtpmap:109 iLBC/8000\n" +
	"a=fmtp:109 mode=30\n" +
	"a=rtpmap:3 GSM/8000\n" +
	"a=rtpmap:0 PCMU/8000\n" +
	"a=rtpmap:8 PCMA/8000\n" +
	"a=rtpmap:9 G722/8000\n" +
	"a=rtpmap:101 telephone-event/8000\n" +
	"a=fmtp:101 0-15\n" +
	"a=rtcp:4017 IN IP4 172.16.7.70"

const sdpEvent = "variable_switch_r_sdp: " + sdpValue + "\n" +
	"\n" +
	"variable_endpoint_disposition: DELAYED NEGOTIATION"

// notifyReferHead carries Content-Length twice.
const notifyReferHead = "Event-Subclass: sofia::notify_refer\n" +
	"Event-Name: CUSTOM\n" +
	"Core-UUID: c6327c82-be80-4c4d-8966-2a11bb4004f4\n" +
	"FreeSWITCH-Hostname: PBX-SIPT-IPSM-2\n" +
	"FreeSWITCH-Switchname: PBX-SIPT-IPSM-2\n" +
	"FreeSWITCH-IPv4: 192.168.194.31\n" +
	"FreeSWITCH-IPv6: ::1\n" +
	"Event-Date-Local: 2020-03-13 10:52:49\n" +
	"Event-Date-GMT: Fri, 13 Mar 2020 14:52:49 GMT\n" +
	"Event-Date-Timestamp: 1584111169386681\n" +
	"Event-Calling-File: sofia.c\n" +
	"Event-Calling-Function: sofia_handle_sip_i_notify\n" +
	"Event-Calling-Line-Number: 657\n" +
	"Event-Sequence: 895854\n" +
	"content-type: message/sipfrag\n" +
	"event-package: refer\n" +
	"event-id: 17501791\n" +
	"contact: +14167601210@10.1.109.13\n" +
	"from: +14167601210@hipv.itech.ca\n" +
	"from-tag: 1400489415-1584111124103\n" +
	"to: 6137700001@hipv.itech.ca\n" +
	"to-tag: Njryg7ra0U9vN\n" +
	"call-id: 225c8744-dfdd-1238-6da5-005056a17d9b\n" +
	"subscription-substate: terminated\n" +
	"subscription-reason: noresource\n" +
	"UniqueID: 63509455-96e6-4e43-b52f-8239e7088331\n" +
	"Content-Length: 20\n" +
	"Content-Length: 20\n" +
	"\n"

func TestParse_Heartbeat(t *testing.T) {
	ev, err := Parse(heartbeatEvent)
	require.NoError(t, err)

	assert.Equal(t, 6, ev.Headers().Len())
	assert.Equal(t, "HEARTBEAT", ev.Get("Event-Name"))
	assert.Equal(t, "%3A%3A1", ev.Get("FreeSWITCH-IPv6"))
	assert.False(t, ev.HasBody())

	body, ok := ev.Body()
	assert.False(t, ok)
	assert.Nil(t, body)
}

func TestParse_HeadersOnlyLastValueWins(t *testing.T) {
	ev, err := Parse("A: 1\nB: 2\nA: 3\nC: 4")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, ev.Headers().Names())
	assert.Equal(t, "3", ev.Get("A"))
}

func TestParse_LogEvent(t *testing.T) {
	ev, err := Parse(logEvent)
	require.NoError(t, err)

	assert.Equal(t, "log/data", ev.Get("Content-Type"))
	assert.Equal(t, "126", ev.Get("Content-Length"))
	assert.Equal(t, "7", ev.Get("Log-Level"))
	assert.Equal(t, 8, ev.Len())

	body, ok := ev.Body()
	require.True(t, ok)
	assert.Equal(t, logLine+"\n", string(body))
	assert.Len(t, body, 126)
}

func TestParse_MultilineValue(t *testing.T) {
	ev, err := Parse(sdpEvent)
	require.NoError(t, err)

	assert.Equal(t, sdpValue, ev.Get("variable_switch_r_sdp"))
	assert.Equal(t, "DELAYED NEGOTIATION", ev.Get("variable_endpoint_disposition"))
	assert.Equal(t, 2, ev.Len())
	assert.False(t, ev.HasBody())
}

func TestParse_DuplicateContentLength(t *testing.T) {
	ev, err := Parse(notifyReferHead + "SIP/2.0 100 Trying\r\n")
	require.NoError(t, err)

	assert.Equal(t, "20", ev.Get("Content-Length"))
	assert.Equal(t, 27, ev.Len())
	assert.Equal(t, "sofia::notify_refer", ev.Get("Event-Subclass"))
	assert.Equal(t, "::1", ev.Get("FreeSWITCH-IPv6"))
	assert.Equal(t, "SIP/2.0 100 Trying\r\n", ev.BodyString())
}

func TestParse_TruncatedBody(t *testing.T) {
	ev, err := Parse(notifyReferHead + "SIP/2.0 100 Trying")
	require.Error(t, err)
	assert.Nil(t, ev)

	assert.True(t, errors.Is(err, ErrTruncatedBody))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, len(notifyReferHead), pe.Position)
	assert.Contains(t, pe.Error(), "esl: parse error at position")
	assert.Contains(t, pe.Error(), "truncated body")
}

func TestParse_InvalidLength(t *testing.T) {
	for _, v := range []string{"abc", "-5", "", "1.5", "+3"} {
		t.Run(v, func(t *testing.T) {
			_, err := Parse("Event-Name: X\nContent-Length: " + v + "\n\nbody")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidLength))

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, 2, pe.Line)
			assert.True(t, strings.HasPrefix(pe.Error(), "esl: parse error at line 2"))
		})
	}
}

func TestParse_BodyAfterBlankLineOnly(t *testing.T) {
	// A header after exactly one blank line is a separate entry when no
	// Content-Length has been seen.
	ev, err := Parse("A: first\nmore\n\nB: second")
	require.NoError(t, err)

	assert.Equal(t, "first\nmore", ev.Get("A"))
	assert.Equal(t, "second", ev.Get("B"))
}

func TestParse_ContentLengthStopsHeaderScan(t *testing.T) {
	ev, err := Parse("Content-Length: 13\n\nNot-Header: x")
	require.NoError(t, err)

	assert.False(t, ev.Headers().Has("Not-Header"))
	assert.Equal(t, "Not-Header: x", ev.BodyString())
}

func TestParse_ZeroLength(t *testing.T) {
	ev, err := Parse("Content-Length: 0\n\n")
	require.NoError(t, err)

	body, ok := ev.Body()
	assert.True(t, ok)
	assert.Empty(t, body)
}

func TestParse_CRLF(t *testing.T) {
	ev, err := Parse("Event-Name: API\r\nContent-Length: 3\r\n\r\n+OK")
	require.NoError(t, err)

	assert.Equal(t, "API", ev.Get("Event-Name"))
	assert.Equal(t, "3", ev.Get("Content-Length"))
	assert.Equal(t, "+OK", ev.BodyString())
}

func TestParse_EmptyInput(t *testing.T) {
	ev, err := Parse("")
	require.NoError(t, err)

	assert.Equal(t, 0, ev.Headers().Len())
	assert.NotNil(t, ev.Headers())
	assert.False(t, ev.HasBody())
}

func TestParse_Idempotent(t *testing.T) {
	for _, input := range []string{heartbeatEvent, logEvent, sdpEvent, notifyReferHead + "SIP/2.0 100 Trying\r\n"} {
		first, err := Parse(input)
		require.NoError(t, err)
		second, err := Parse(input)
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
		assert.Equal(t, first.Headers(), second.Headers())
	}
}

func TestParseBytes_DoesNotAlias(t *testing.T) {
	data := []byte("Name: value\nContent-Length: 4\n\nbody")
	ev, err := ParseBytes(data)
	require.NoError(t, err)

	for i := range data {
		data[i] = 'x'
	}
	assert.Equal(t, "value", ev.Get("Name"))
	assert.Equal(t, "body", ev.BodyString())
}

func TestParseReader(t *testing.T) {
	ev, err := ParseReader(strings.NewReader(logEvent))
	require.NoError(t, err)
	assert.Equal(t, logLine+"\n", ev.BodyString())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseReader_Error(t *testing.T) {
	_, err := ParseReader(failingReader{})
	assert.EqualError(t, err, "boom")
}
