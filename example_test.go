package tablemark_test

import (
	"fmt"
	"log"

	"github.com/tablemark/tablemark"
	lua "github.com/yuin/gopher-lua"
)

// This example loads the full-operator usertype workload into a fresh state
// and invokes it directly. For a fixed iteration count the sum is
// deterministic, so it can be checked by hand.
func ExampleWorkload_Invoke() {
	var workload tablemark.Workload
	for _, w := range tablemark.Workloads() {
		if w.Name == "usertypes-fullop" {
			workload = w
		}
	}

	L := lua.NewState()
	defer L.Close()

	if _, err := workload.Load(L); err != nil {
		log.Fatal(err)
	}

	sum, err := workload.Invoke(L, 1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(sum)
	// Output: 5022
}
