package gobloom_test

import (
	"fmt"

	"github.com/alexanderbez/gobloom"
)

func Example() {
	bf, err := gobloom.New(100)
	if err != nil {
		panic(err)
	}

	bf.Set([]byte("foo"))
	bf.Set([]byte("bar"))

	fmt.Println(bf.Has([]byte("foo")))
	fmt.Println(bf.Has([]byte("bar")))
	fmt.Println(bf.Has([]byte("baz")))
	fmt.Println(bf.ApproxItems())
	// Output:
	// true
	// true
	// false
	// 2
}
