package grpc

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestOffsetFromToken(t *testing.T) {
	cases := []struct {
		name  string
		token string
		want  int32
	}{
		{name: "empty token starts at zero", token: "", want: 0},
		{name: "offset passes through", token: "40", want: 40},
		{name: "offset not aligned to any page size", token: "37", want: 37},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := offsetFromToken(tc.token)
			if err != nil {
				t.Fatalf("offsetFromToken: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got offset %d, want %d", got, tc.want)
			}
		})
	}
}

func TestOffsetFromTokenMalformed(t *testing.T) {
	for _, token := range []string{"abc", "-10", "12.5"} {
		_, err := offsetFromToken(token)
		if err == nil {
			t.Fatalf("token %q: expected error", token)
		}
		if status.Code(err) != codes.InvalidArgument {
			t.Fatalf("token %q: got code %v, want InvalidArgument", token, status.Code(err))
		}
	}
}
