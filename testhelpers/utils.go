package testhelpers

import (
	"fmt"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
)

// ReseedRandomNumberGenerator reinitialises the global random number generator
// with a new seed value, which incorporates the system time and GinkgoParallelProcess
// id. This should prevent random number-related races between tests which kick
// off at the same time on different Ginkgo nodes.
func ReseedRandomNumberGenerator() {
	rand.Seed(time.Now().UnixNano() + int64(GinkgoParallelProcess()*1000))
}

func NewRandomDatasetName(pool string) string {
	return fmt.Sprintf("%s/random-vol-%d", pool, rand.Int())
}
