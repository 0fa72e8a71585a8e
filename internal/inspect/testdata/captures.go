package main

import "fmt"

type Worker struct{ ID int }

func (w Worker) Process(ch chan int) {
	ch <- w.ID * 10
}

var square = func(n int) int { return n * n }

func main() {
	ch := make(chan int)
	worker := Worker{ID: 42}
	const scale = 3

	go func() {
		worker.Process(ch)
	}()

	add := func(a, b int) int { return a + b }

	total := 0
	for i := range 3 {
		func() {
			total += i * scale
		}()
	}

	outer := func() func() int {
		return func() int { return total }
	}

	fmt.Println("Result:", <-ch, add(1, 2), square(2), outer()())
}
