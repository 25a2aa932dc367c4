package speech

import (
	"testing"
	"time"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/engine"
)

func TestFormatPause(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{5 * time.Second, "5s"},
		{3 * time.Second, "3s"},
		{1500 * time.Millisecond, "1500ms"},
		{1 * time.Second, "1s"},
	}
	for _, c := range cases {
		if got := FormatPause(c.in); got != c.want {
			t.Fatalf("FormatPause(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRender(t *testing.T) {
	segments := []engine.Segment{
		{Text: "El patito, el dos.", Pause: 3 * time.Second},
		{Text: "Llevamos 10 bolas.", Pause: 1 * time.Second},
		{Text: "Quedan 80 números."},
	}
	got := Render(segments)
	want := `El patito, el dos. <break time="3s"/> Llevamos 10 bolas. <break time="1s"/> Quedan 80 números.`
	if got != want {
		t.Fatalf("Render mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestWrapExcited(t *testing.T) {
	got := WrapExcited("hola", "medium")
	want := `<amazon:emotion name="excited" intensity="medium">hola</amazon:emotion>`
	if got != want {
		t.Fatalf("WrapExcited mismatch: %q", got)
	}
}
