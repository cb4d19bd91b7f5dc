package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Get   bool
	Set   bool
	Del   bool
	Patch bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Get = boolEnv("PSTORE_DEBUG_GET")
	d.Set = boolEnv("PSTORE_DEBUG_SET")
	d.Del = boolEnv("PSTORE_DEBUG_DEL")
	d.Patch = boolEnv("PSTORE_DEBUG_PATCH")
	d.Query = boolEnv("PSTORE_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Get() bool {
	return d.Get
}
func Set() bool {
	return d.Set
}
func Del() bool {
	return d.Del
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
