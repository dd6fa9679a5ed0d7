package test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Test runs the ginkgo specs of the calling package. It is meant to be the only
// statement of a package's TestSuite function.
func Test(t *testing.T) {
	RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, suiteName())
}

// suiteName is the directory holding the caller's suite file, e.g. "dosage suite".
func suiteName() string {
	_, file, _, ok := runtime.Caller(2)
	if !ok {
		return "anticoag suite"
	}
	return filepath.Base(filepath.Dir(file)) + " suite"
}

// LoadFixture reads a slash-separated path relative to the package under test.
func LoadFixture(relativePath string) ([]byte, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return os.ReadFile(filepath.Join(wd, filepath.FromSlash(relativePath)))
}
