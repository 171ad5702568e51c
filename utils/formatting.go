package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/sosodev/duration"
	"golang.org/x/exp/constraints"
)

// Do not escape ampersands, because they are not parsed by Telegram
var htmlTelegramEscaper = strings.NewReplacer(
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&#34;",
)

func Escape(s string) string {
	return htmlTelegramEscaper.Replace(s)
}

func FormatThousand[T constraints.Integer](n T) string {
	in := strconv.FormatInt(int64(n), 10)
	numOfDigits := len(in)
	if n < 0 {
		numOfDigits--
	}
	numOfCommas := (numOfDigits - 1) / 3

	out := make([]byte, len(in)+numOfCommas)
	if n < 0 {
		in, out[0] = in[1:], '-'
	}

	for i, j, k := len(in)-1, len(out)-1, 0; ; i, j = i-1, j-1 {
		out[j] = in[i]
		if i == 0 {
			return string(out)
		}
		if k++; k == 3 {
			j, k = j-1, 0
			out[j] = ','
		}
	}
}

func EmbedGUID(guid string) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("(<code>")
	sb.WriteString(guid)
	sb.WriteString("</code>)")
	return sb.String()
}

func FullName(firstName, lastName string) string {
	var sb strings.Builder
	sb.WriteString(firstName)
	if lastName != "" {
		sb.WriteString(" ")
		sb.WriteString(lastName)
	}
	return sb.String()
}

// HumanizeDuration renders d in a compact form like "1h30m" or "0.2s".
func HumanizeDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	iso := duration.FromTimeDuration(d)
	var sb strings.Builder

	if iso.Years > 0 {
		sb.WriteString(strconv.Itoa(int(iso.Years)))
		sb.WriteString("y")
	}

	if iso.Months > 0 {
		sb.WriteString(strconv.Itoa(int(iso.Months)))
		sb.WriteString("M")
	}

	if iso.Weeks > 0 {
		sb.WriteString(strconv.Itoa(int(iso.Weeks)))
		sb.WriteString("w")
	}

	if iso.Days > 0 {
		sb.WriteString(strconv.Itoa(int(iso.Days)))
		sb.WriteString("d")
	}

	if iso.Hours > 0 {
		sb.WriteString(strconv.Itoa(int(iso.Hours)))
		sb.WriteString("h")
	}

	if iso.Minutes > 0 {
		sb.WriteString(strconv.Itoa(int(iso.Minutes)))
		sb.WriteString("m")
	}

	if iso.Seconds > 0 {
		sb.WriteString(strconv.FormatFloat(iso.Seconds, 'f', -1, 64))
		sb.WriteString("s")
	}

	return sb.String()
}
