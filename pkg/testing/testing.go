package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// tests write logs/ and data/ relative to the working directory, so move
	// to the project root before any of them run
	//
	//   in some_test.go,
	//   import (
	//     _ "liyu1981.xyz/battery-tracking-service/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
