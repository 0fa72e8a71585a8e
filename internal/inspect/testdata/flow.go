package main

import (
	"errors"
	"fmt"
)

type Player struct {
	Name   string
	Health int
}

func divide(a, b int) (int, error) {
	if b == 0 {
		return 0, errors.New("cannot divide by zero")
	}
	return a / b, nil
}

func countdown(from int) {
	i := from
	for i > 0 {
		fmt.Println(i)
		i = i - 1
	}
}

func main() {
	p := Player{Name: "ana", Health: 3}
	countdown(p.Health)
	if v, err := divide(10, 2); err == nil {
		fmt.Println(v)
	}
}
