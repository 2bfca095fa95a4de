package utillog

import "fmt"

// Pluggable log funcs for the leaf util packages.
//
// The root igen package rewires these to logrus in SetupLog, leaf packages only ever call
// DebugLog / ErrorLog and carry no logging dependency themselves.
var (
	DebugLog func(pat string, args ...any) = func(pat string, args ...any) {}
	ErrorLog func(pat string, args ...any) = func(pat string, args ...any) {
		fmt.Printf("[Error] "+pat+"\n", args...)
	}
)
