package dyn_test

import (
	"fmt"

	"github.com/mcvoid/dyn"
)

func ExampleParseJSON() {
	val, err := dyn.ParseJSON([]byte(`{
		"name": "The Beatles",
		"formed": 1960,
		"active": false,
		"members": ["John", "Paul", "George", "Ringo"]
	}`))
	if err != nil {
		panic(err)
	}

	m, _ := val.AsObject()

	name, _ := m["name"].AsString()
	fmt.Println(name)

	// Uint and Int are both numbers; ToFloat coerces either.
	formed, _ := m["formed"].ToFloat()
	fmt.Println(formed)

	members, _ := m["members"].AsArray()
	fmt.Println(len(members))

	// Output:
	// The Beatles
	// 1960
	// 4
}

func ExampleParseCSVHeaded() {
	val, err := dyn.ParseCSVHeaded([]byte("name,age,active\nAda,36,true\nAlan,\n"))
	if err != nil {
		panic(err)
	}

	rows, _ := val.AsCsvObject()
	for _, row := range rows {
		name, _ := row["name"].AsString()
		age, hasAge := row["age"].ToUint()
		if hasAge {
			fmt.Printf("%s is %d\n", name, age)
		} else {
			fmt.Printf("%s has an unknown age\n", name)
		}
	}

	// Output:
	// Ada is 36
	// Alan has an unknown age
}
