package sentinel_test

import (
	"time"

	"github.com/mgnsk/sentinel"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func values[V any](l *sentinel.List[V]) []V {
	var result []V
	it := l.Iter()
	for it.Next() {
		result = append(result, it.Value())
	}
	Expect(it.Err()).NotTo(HaveOccurred())
	return result
}

func peekHead[V any](l *sentinel.List[V]) V {
	v, ok := l.PeekHead()
	Expect(ok).To(BeTrue())
	return v
}

func peekTail[V any](l *sentinel.List[V]) V {
	v, ok := l.PeekTail()
	Expect(ok).To(BeTrue())
	return v
}

var _ = Describe("removing elements through handles", func() {
	var (
		l               *sentinel.List[int]
		one, two, three *sentinel.Handle[int]
	)

	BeforeEach(func() {
		l = sentinel.New[int]()
		one = l.PushHead(1)
		two = l.PushTail(2)
		three = l.PushTail(3)
	})

	AfterEach(func() {
		Expect(l.Validate()).To(Succeed())
	})

	Specify("pushes build the list in order", func() {
		Expect(peekHead(l)).To(Equal(1))
		Expect(peekTail(l)).To(Equal(3))
		Expect(values(l)).To(Equal([]int{1, 2, 3}))
	})

	When("the head is unlinked", func() {
		BeforeEach(func() {
			Expect(one.Unlink()).To(Equal(1))
		})

		It("leaves the rest in order", func() {
			Expect(peekHead(l)).To(Equal(2))
			Expect(peekTail(l)).To(Equal(3))
			Expect(values(l)).To(Equal([]int{2, 3}))
		})

		When("the tail is unlinked", func() {
			BeforeEach(func() {
				Expect(three.Unlink()).To(Equal(3))
			})

			It("leaves a single element", func() {
				Expect(peekHead(l)).To(Equal(2))
				Expect(peekTail(l)).To(Equal(2))
			})

			It("becomes empty after the last unlink", func() {
				Expect(two.Unlink()).To(Equal(2))

				_, ok := l.PeekHead()
				Expect(ok).To(BeFalse())

				_, ok = l.PeekTail()
				Expect(ok).To(BeFalse())

				Expect(values(l)).To(BeEmpty())
			})
		})
	})

	When("a handle is released without unlinking", func() {
		It("behaves like unlink", func() {
			func() {
				h := l.PushHead(0)
				defer h.Release()

				Expect(peekHead(l)).To(Equal(0))
			}()

			Expect(peekHead(l)).To(Equal(1))
			Expect(values(l)).To(Equal([]int{1, 2, 3}))

			two.Release()
			Expect(values(l)).To(Equal([]int{1, 3}))

			three.Release()
			Expect(peekTail(l)).To(Equal(1))
		})

		It("makes the value unobservable", func() {
			two.Release()

			_, err := two.Value()
			Expect(err).To(MatchError(sentinel.ErrStaleHandle))

			_, err = two.Unlink()
			Expect(err).To(MatchError(sentinel.ErrStaleHandle))
		})
	})

	When("values are replaced by mutable iteration", func() {
		It("is visible through the handles", func() {
			counter := 3
			for p := range l.Pointers() {
				*p = counter
				counter--
			}

			Expect(one.Value()).To(Equal(3))
			Expect(two.Value()).To(Equal(2))
			Expect(three.Value()).To(Equal(1))
		})
	})

	When("the list is cleared", func() {
		It("detaches all handles", func() {
			l.Clear()

			Expect(l.Len()).To(BeZero())
			Expect(values(l)).To(BeEmpty())

			for _, h := range []*sentinel.Handle[int]{one, two, three} {
				Expect(h.Linked()).To(BeFalse())
				_, err := h.Unlink()
				Expect(err).To(MatchError(sentinel.ErrStaleHandle))
			}
		})
	})

	When("elements are pushed after removals", func() {
		It("links them to the current neighbors", func() {
			two.Release()
			four := l.PushTail(4)
			one.Release()
			zero := l.PushHead(0)

			Expect(values(l)).To(Equal([]int{0, 3, 4}))

			Expect(four.Unlink()).To(Equal(4))
			Expect(zero.Unlink()).To(Equal(0))
			Expect(values(l)).To(Equal([]int{3}))
			Expect(peekHead(l)).To(Equal(3))
			Expect(peekTail(l)).To(Equal(3))
		})
	})
})

var _ = Describe("iterating an empty list", func() {
	Specify("the iterator is exhausted immediately", func() {
		var l sentinel.List[string]

		it := l.Iter()
		Expect(it.Next()).To(BeFalse())
		Expect(it.Err()).NotTo(HaveOccurred())

		mit := l.IterMut()
		Expect(mit.Next()).To(BeFalse())
		Expect(mit.Err()).NotTo(HaveOccurred())
	})
})

type point struct {
	X, Y int
}

var _ = DescribeTable("unlink returns the inserted value",
	func(value any) {
		var l sentinel.List[any]

		l.PushTail("before")
		h := l.PushTail(value)
		l.PushTail("after")

		Expect(h.Value()).To(Equal(value))
		Expect(h.Unlink()).To(Equal(value))
		Expect(values(&l)).To(Equal([]any{"before", "after"}))
		Expect(l.Validate()).To(Succeed())
	},
	Entry("int", 42),
	Entry("string", "value"),
	Entry("struct", point{X: 1, Y: 2}),
	Entry("pointer", &point{X: 3, Y: 4}),
	Entry("slice", []string{"a", "b"}),
	Entry("map", map[string]int{"a": 1}),
	Entry("time", time.Unix(1700000000, 0)),
)
