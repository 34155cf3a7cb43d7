package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestCommandRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{
			name: "init countdown",
			cmd:  Command{Type: CmdInit, ID: "timer-1", Kind: KindCountdown, DurationMs: 3000},
		},
		{
			name: "init zero duration stopwatch",
			cmd:  Command{Type: CmdInit, ID: "timer-2", Kind: KindStopwatch},
		},
		{
			name: "pause",
			cmd:  Command{Type: CmdPause, ID: "timer-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeCommand(&tt.cmd)
			if err != nil {
				t.Fatalf("EncodeCommand() error = %v", err)
			}

			decoded, err := DecodeCommand(data)
			if err != nil {
				t.Fatalf("DecodeCommand() error = %v", err)
			}

			if *decoded != tt.cmd {
				t.Errorf("decoded = %+v, want %+v", *decoded, tt.cmd)
			}
		})
	}
}

func TestCommandIntegerKeys(t *testing.T) {
	data, err := EncodeCommand(&Command{Type: CmdStart, ID: "a"})
	if err != nil {
		t.Fatalf("EncodeCommand() error = %v", err)
	}

	// map(2) {1: 2, 2: "a"}
	want := []byte{0xa2, 0x01, 0x02, 0x02, 0x61, 'a'}
	if !bytes.Equal(data, want) {
		t.Errorf("encoding = %x, want %x", data, want)
	}
}

func TestCommandValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"unknown type", Command{Type: 42, ID: "x"}},
		{"zero type", Command{ID: "x"}},
		{"missing id", Command{Type: CmdStart}},
		{"init without kind", Command{Type: CmdInit, ID: "x", DurationMs: 10}},
		{"init negative duration", Command{Type: CmdInit, ID: "x", Kind: KindCountdown, DurationMs: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodeCommand(&tt.cmd)
			if !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("EncodeCommand() error = %v, want ErrInvalidCommand", err)
			}
		})
	}
}

func TestDecodeCommandGarbage(t *testing.T) {
	_, err := DecodeCommand([]byte{0xff, 0x00})
	if !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("DecodeCommand(garbage) error = %v, want ErrInvalidCommand", err)
	}

	// Well-formed CBOR that carries an unknown command type.
	data, err := Marshal(map[int]any{1: 99, 2: "timer-1"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if _, err := DecodeCommand(data); !errors.Is(err, ErrInvalidCommand) {
		t.Errorf("DecodeCommand(unknown type) error = %v, want ErrInvalidCommand", err)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	resp := Response{TimeString: "00:00:00", ID: "timer-1", Done: true}

	data, err := EncodeResponse(&resp)
	if err != nil {
		t.Fatalf("EncodeResponse() error = %v", err)
	}
	decoded, err := DecodeResponse(data)
	if err != nil {
		t.Fatalf("DecodeResponse() error = %v", err)
	}
	if *decoded != resp {
		t.Errorf("decoded = %+v, want %+v", *decoded, resp)
	}
}

func TestResponseFault(t *testing.T) {
	resp := Response{ID: "timer-1", Error: "boom"}
	if !resp.IsFault() {
		t.Error("IsFault() = false, want true")
	}

	bad := Response{ID: "timer-1", Error: "boom", Done: true}
	if _, err := EncodeResponse(&bad); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("EncodeResponse(done fault) error = %v, want ErrInvalidResponse", err)
	}

	if _, err := EncodeResponse(&Response{TimeString: "00:00:01"}); !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("EncodeResponse(no id) error = %v, want ErrInvalidResponse", err)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Countdown")
	if err != nil || k != KindCountdown {
		t.Errorf("ParseKind(Countdown) = %v, %v", k, err)
	}
	k, err = ParseKind("stopwatch")
	if err != nil || k != KindStopwatch {
		t.Errorf("ParseKind(stopwatch) = %v, %v", k, err)
	}
	if _, err := ParseKind("hourglass"); err == nil {
		t.Error("ParseKind(hourglass) expected error")
	}
}

func TestParseCommandType(t *testing.T) {
	for _, c := range []CommandType{CmdInit, CmdStart, CmdPause, CmdResume, CmdReset, CmdStop} {
		parsed, err := ParseCommandType(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseCommandType(%q) = %v, %v", c.String(), parsed, err)
		}
	}
	if c, _ := ParseCommandType("continue"); c != CmdResume {
		t.Errorf("ParseCommandType(continue) = %v, want resume", c)
	}
	if _, err := ParseCommandType("rewind"); err == nil {
		t.Error("ParseCommandType(rewind) expected error")
	}
}
