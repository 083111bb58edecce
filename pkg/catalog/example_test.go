package catalog_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/algotrace/pkg/catalog"
)

func ExampleAlgorithm_Run() {
	alg, err := catalog.Lookup("gcd")
	if err != nil {
		panic(err)
	}
	t, err := alg.Run(context.Background(), map[string]string{"a": "12", "b": "8"})
	if err != nil {
		panic(err)
	}
	last, _ := t.Last()
	fmt.Println(t.Len(), "steps")
	fmt.Printf("line %d: %s\n", last.Line, last.Message)
	// Output:
	// 10 steps
	// line 6: gcd = 4.
}

func ExampleLookup_unknown() {
	_, err := catalog.Lookup("bogo-sort")
	fmt.Println(err != nil)
	// Output: true
}
