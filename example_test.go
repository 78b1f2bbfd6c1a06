package dur_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/andreyvit/dur"
)

func ExampleParse() {
	d, err := dur.Parse("1h2m3.5s")
	fmt.Println(d, err)
	// Output: 1h2m3.5s <nil>
}

func ExampleDuration_String() {
	fmt.Println(dur.FromNanos(1210000000))
	fmt.Println(dur.FromNanos(4000))
	fmt.Println(-300 * dur.Millisecond)
	fmt.Println(dur.Duration(0))
	// Output: 1.21s
	// 4µs
	// -300ms
	// 0s
}

func ExampleParsePrefix() {
	d, rest, _ := dur.ParsePrefix("10ns 30ms")
	fmt.Printf("%v + %q\n", d, rest)
	// Output: 10ns + " 30ms"
}

// ParsePrefix slots into a surrounding hand-rolled parser: here a list
// of durations with whatever separators the host grammar wants.
func ExampleParsePrefix_embedded() {
	input := "150ms, 2.5s, 1h"
	for input != "" {
		d, rest, err := dur.ParsePrefix(input)
		if err != nil {
			fmt.Println(err)
			break
		}
		fmt.Println(d.Nanos())
		input = strings.TrimLeft(rest, ", ")
	}
	// Output: 150000000
	// 2500000000
	// 3600000000000
}

func ExampleNanos() {
	type Config struct {
		Timeout  dur.Duration `json:"timeout"`
		Interval dur.Nanos    `json:"interval"`
	}
	raw, _ := json.Marshal(Config{Timeout: 90 * dur.Second, Interval: dur.Nanos(17)})
	fmt.Println(string(raw))
	// Output: {"timeout":"1m30s","interval":17}
}
