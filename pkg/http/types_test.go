package http

import (
	"testing"
)

func TestHeaders_Get(t *testing.T) {
	h := Headers{
		{Key: "Content-Type", Value: "application/json"},
		{Key: "Host", Value: "example.com"},
		{Key: "X-Custom", Value: "value1"},
	}

	tests := []struct {
		key  string
		want string
	}{
		{"Content-Type", "application/json"},
		{"content-type", "application/json"},
		{"CONTENT-TYPE", "application/json"},
		{"Host", "example.com"},
		{"X-Missing", ""},
	}

	for _, tt := range tests {
		got := h.Get(tt.key)
		if got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestHeaders_Values(t *testing.T) {
	h := Headers{
		{Key: "Set-Cookie", Value: "a=1"},
		{Key: "Content-Type", Value: "text/html"},
		{Key: "Set-Cookie", Value: "b=2"},
		{Key: "Set-Cookie", Value: "c=3"},
	}

	vals := h.Values("Set-Cookie")
	if len(vals) != 3 {
		t.Fatalf("Values(Set-Cookie) returned %d values, want 3", len(vals))
	}
	if vals[0] != "a=1" || vals[1] != "b=2" || vals[2] != "c=3" {
		t.Errorf("Values(Set-Cookie) = %v, want [a=1 b=2 c=3]", vals)
	}

	vals = h.Values("X-Missing")
	if len(vals) != 0 {
		t.Errorf("Values(X-Missing) = %v, want empty", vals)
	}
}

func TestHeaders_Set(t *testing.T) {
	h := Headers{
		{Key: "Content-Type", Value: "text/plain"},
		{Key: "Host", Value: "example.com"},
		{Key: "Content-Type", Value: "duplicate"},
	}

	h.Set("Content-Type", "application/json")

	if got := h.Get("Content-Type"); got != "application/json" {
		t.Errorf("after Set, Get(Content-Type) = %q, want %q", got, "application/json")
	}

	vals := h.Values("Content-Type")
	if len(vals) != 1 {
		t.Errorf("after Set, Content-Type count = %d, want 1", len(vals))
	}

	h.Set("Accept", "text/html")
	if got := h.Get("Accept"); got != "text/html" {
		t.Errorf("after Set new, Get(Accept) = %q, want %q", got, "text/html")
	}
}

func TestHeaders_Add(t *testing.T) {
	var h Headers
	h.Add("Set-Cookie", "a=1")
	h.Add("Set-Cookie", "b=2")

	vals := h.Values("Set-Cookie")
	if len(vals) != 2 {
		t.Fatalf("after Add, Values(Set-Cookie) returned %d, want 2", len(vals))
	}
}

func TestHeaders_Del(t *testing.T) {
	h := Headers{
		{Key: "Content-Type", Value: "text/plain"},
		{Key: "Host", Value: "example.com"},
		{Key: "Content-Type", Value: "duplicate"},
	}

	h.Del("Content-Type")

	if len(h) != 1 {
		t.Fatalf("after Del, len = %d, want 1", len(h))
	}
	if h[0].Key != "Host" {
		t.Errorf("after Del, remaining header = %q, want Host", h[0].Key)
	}
}

func TestHeaders_Clone(t *testing.T) {
	original := Headers{
		{Key: "Content-Type", Value: "text/plain"},
		{Key: "Host", Value: "example.com"},
	}

	clone := original.Clone()

	clone[0].Value = "modified"
	if original[0].Value == "modified" {
		t.Error("Clone is not a deep copy")
	}

	var nilHeaders Headers
	if nilHeaders.Clone() != nil {
		t.Error("Clone of nil should return nil")
	}
}

func TestHeaders_Map(t *testing.T) {
	h := Headers{
		{Key: "Host", Value: "example.com"},
		{Key: "X-Trace", Value: "first"},
		{Key: "X-Trace", Value: "second"},
	}

	m := h.Map()
	if m["Host"] != "example.com" {
		t.Errorf("Map()[Host] = %q, want example.com", m["Host"])
	}
	if m["X-Trace"] != "second" {
		t.Errorf("Map()[X-Trace] = %q, want second (last write wins)", m["X-Trace"])
	}
}

func TestRequest_GetContentLength(t *testing.T) {
	tests := []struct {
		name    string
		headers Headers
		want    int64
		wantErr error
	}{
		{
			name:    "valid",
			headers: Headers{{Key: "Content-Length", Value: "42"}},
			want:    42,
		},
		{
			name:    "with whitespace",
			headers: Headers{{Key: "Content-Length", Value: " 42 "}},
			want:    42,
		},
		{
			name:    "case insensitive name",
			headers: Headers{{Key: "content-length", Value: "7"}},
			want:    7,
		},
		{
			name:    "absent",
			headers: Headers{},
			wantErr: ErrHeaderMissing,
		},
		{
			name:    "invalid",
			headers: Headers{{Key: "Content-Length", Value: "abc"}},
			wantErr: ErrHeaderMalformed,
		},
		{
			name:    "negative",
			headers: Headers{{Key: "Content-Length", Value: "-1"}},
			wantErr: ErrHeaderMalformed,
		},
		{
			name:    "zero",
			headers: Headers{{Key: "Content-Length", Value: "0"}},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &Request{Headers: tt.headers}
			got, err := req.GetContentLength()
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("GetContentLength() err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetContentLength() unexpected err = %v", err)
			}
			if got != tt.want {
				t.Errorf("GetContentLength() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMethod_String(t *testing.T) {
	if MethodGet.String() != "GET" {
		t.Errorf("MethodGet.String() = %q, want GET", MethodGet.String())
	}
	if MethodUnknown.String() != "" {
		t.Errorf("MethodUnknown.String() = %q, want \"\"", MethodUnknown.String())
	}
}

func TestProtocol_String(t *testing.T) {
	if ProtocolHTTP11.String() != "HTTP/1.1" {
		t.Errorf("ProtocolHTTP11.String() = %q, want HTTP/1.1", ProtocolHTTP11.String())
	}
}
