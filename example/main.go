package main

import (
	"fmt"

	"github.com/mgnsk/sentinel"
)

type job struct {
	id   int
	name string
}

func main() {
	var pending sentinel.List[job]

	// Keep the handles to cancel jobs later without searching the list.
	handles := map[int]*sentinel.Handle[job]{}
	for i, name := range []string{"fetch", "parse", "index", "notify"} {
		handles[i] = pending.PushTail(job{id: i, name: name})
	}

	canceled, err := handles[2].Unlink()
	if err != nil {
		panic(err)
	}
	fmt.Println("canceled:", canceled.name)

	// Handles released on scope end are removed from the list.
	func() {
		h := pending.PushHead(job{id: 4, name: "urgent"})
		defer h.Release()

		head, _ := pending.PeekHead()
		fmt.Println("running:", head.name)
	}()

	for j := range pending.All() {
		fmt.Println("pending:", j.name)
	}
}
