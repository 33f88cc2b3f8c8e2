package main

import (
	"fmt"

	"github.com/henderiw/graycode/pkg/graycode"
	"github.com/henderiw/graycode/pkg/graytable"
	"k8s.io/apimachinery/pkg/labels"
)

func main() {
	codes, err := graycode.Sequence[uint8](4)
	if err != nil {
		panic(err)
	}
	for _, c := range codes {
		fmt.Println("code", c.Uint(), c.String())
	}

	tbl, err := graytable.New(map[uint8]labels.Set{
		0: map[string]string{"status": "reserved"},
	}, nil)
	if err != nil {
		panic(err)
	}

	for i := 0; i < 8; i++ {
		c, err := tbl.ClaimDynamic(map[string]string{"type": "encoder"})
		if err != nil {
			panic(err)
		}
		fmt.Println("claimed", c.Uint(), c.String())
	}

	selector, err := labels.Parse("type=encoder")
	if err != nil {
		panic(err)
	}
	fmt.Println("encoders", len(tbl.GetByLabel(selector)))
}
