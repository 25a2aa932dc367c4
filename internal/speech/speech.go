package speech

import (
	"fmt"
	"strings"
	"time"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/engine"
)

// FormatPause renders a pause duration the way the speech markup expects:
// whole seconds as "3s", anything finer as milliseconds ("1500ms").
func FormatPause(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// Break renders a single pause directive.
func Break(d time.Duration) string {
	return fmt.Sprintf(`<break time="%s"/>`, FormatPause(d))
}

// Render joins ordered segments into speech markup, inserting a break
// directive after each segment that declares a pause.
func Render(segments []engine.Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(seg.Text)
		if seg.Pause > 0 {
			b.WriteString(" ")
			b.WriteString(Break(seg.Pause))
		}
	}
	return b.String()
}

// WrapExcited wraps already-rendered markup in the excited-emotion tag used
// for the number-calling run.
func WrapExcited(ssml, intensity string) string {
	return fmt.Sprintf(`<amazon:emotion name="excited" intensity="%s">%s</amazon:emotion>`, intensity, ssml)
}
