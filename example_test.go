package jsonpath_test

import (
	"fmt"
	"strings"

	"github.com/jacoelho/jsonpath"
)

func Example() {
	doc, err := jsonpath.DecodeJSON(strings.NewReader(
		`{"store": {"book": [{"title": "A", "price": 8.95}, {"title": "B", "price": 12.99}]}}`))
	if err != nil {
		panic(err)
	}

	query := jsonpath.MustCompile("$.store.book[?@.price < 10].title")
	result, err := query.Evaluate(doc)
	if err != nil {
		panic(err)
	}

	for node := range result.All() {
		fmt.Printf("%s = %v\n", node.Path(), node.Value())
	}
	// Output:
	// $['store']['book'][0]['title'] = A
}

func ExampleQuery_String() {
	query := jsonpath.MustCompile("$.store.book[0].title")
	fmt.Println(query)
	// Output:
	// $['store']['book'][0]['title']
}
