package main

import (
	"context"
	"log"

	"github.com/nikhilkumar92976/FOOD-INSTA/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
