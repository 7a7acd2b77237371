package relate_test

import (
	"fmt"

	"github.com/katalvlaran/kinship/ancestry"
	"github.com/katalvlaran/kinship/lineage"
	"github.com/katalvlaran/kinship/relate"
)

// ExampleNamer_Relationship names relationships in a three-generation line.
//
// Tree:
//
//	grandfather → father → son
//
// The label is gendered by the first argument: the son is the grandfather's
// "Grandson", the grandfather is the son's "Grandfather".
func ExampleNamer_Relationship() {
	grandfather := lineage.NewMember("George", ancestry.Male, nil)
	father := grandfather.Child("Frank", ancestry.Male)
	son := father.Child("Sam", ancestry.Male)

	namer := relate.NewNamer[string]()
	for _, pair := range [][2]*lineage.Member{
		{son, grandfather},
		{grandfather, son},
		{father, grandfather},
	} {
		label, err := namer.Relationship(pair[0], pair[1])
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(label)
	}
	// Output:
	// Grandson
	// Grandfather
	// Son
}

// ExampleAbbreviate compresses a deep direct-line label.
func ExampleAbbreviate() {
	fmt.Println(relate.Abbreviate("Great, great, great, great grandmother", 3))
	fmt.Println(relate.Abbreviate("Great grandmother", 3))
	// Output:
	// 4 x great grandmother
	// Great grandmother
}
