package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Canon bool
	Diff  bool
	Rows  bool
	Parse bool
	Serve bool
}

var d *debug

func init() {
	d = &debug{}
	d.Canon = boolEnv("SD_DEBUG_CANON")
	d.Diff = boolEnv("SD_DEBUG_DIFF")
	d.Rows = boolEnv("SD_DEBUG_ROWS")
	d.Parse = boolEnv("SD_DEBUG_PARSE")
	d.Serve = boolEnv("SD_DEBUG_SERVE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Canon() bool {
	return d.Canon
}
func Diff() bool {
	return d.Diff
}
func Rows() bool {
	return d.Rows
}
func Parse() bool {
	return d.Parse
}
func Serve() bool {
	return d.Serve
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
