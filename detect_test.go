package cheese

import (
	"errors"
	"testing"
)

func TestDetectAndOutputName(t *testing.T) {
	for _, tc := range []struct {
		in   string
		dir  Direction
		want string
	}{
		{in: "photo.jpg", dir: ToCheese, want: "photo.cheese"},
		{in: "photo.cheese", dir: ToJPEG, want: "photo.jpg"},
		{in: "a.jpg.jpg", dir: ToCheese, want: "a.jpg.cheese"},
		{in: "my.jpg.cheese", dir: ToJPEG, want: "my.jpg.jpg"},
		{in: ".jpg", dir: ToCheese, want: ".cheese"},
		{in: "photo.png", dir: Unsupported},
		{in: "photo.JPG", dir: Unsupported},
		{in: "photo.jpeg", dir: Unsupported},
		{in: "photo.Cheese", dir: Unsupported},
		{in: "", dir: Unsupported},
	} {
		t.Run(tc.in, func(t *testing.T) {
			if got := Detect(tc.in); got != tc.dir {
				t.Fatalf("direction: got %s want %s", got, tc.dir)
			}

			name, err := OutputName(tc.in)
			if tc.dir == Unsupported {
				if !errors.Is(err, ErrUnsupportedFileType) {
					t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
				}

				return
			}
			if err != nil {
				t.Fatalf("output name: %v", err)
			}
			if name != tc.want {
				t.Fatalf("output name: got %q want %q", name, tc.want)
			}
		})
	}
}
