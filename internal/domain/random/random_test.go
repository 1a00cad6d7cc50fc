package random_test

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/okian/randsum/internal/domain/random"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMathSource_IntRange(t *testing.T) {
	Convey("Given a seeded math source", t, func() {
		src := random.NewMathSource(random.WithSeed(42))
		ctx := context.Background()

		Convey("When drawing many values in [0, 100]", func() {
			seen := make(map[int]bool)
			var outOfRange []int
			for i := 0; i < 20_000; i++ {
				v, err := src.IntRange(ctx, 0, 100)
				if err != nil {
					So(err, ShouldBeNil)
				}
				if v < 0 || v > 100 {
					outOfRange = append(outOfRange, v)
				}
				seen[v] = true
			}

			Convey("Then every value should stay within the bounds", func() {
				So(outOfRange, ShouldBeEmpty)
			})

			Convey("And both bounds should be reachable", func() {
				So(seen[0], ShouldBeTrue)
				So(seen[100], ShouldBeTrue)
				So(len(seen), ShouldEqual, 101)
			})
		})

		Convey("When the range holds a single value", func() {
			v, err := src.IntRange(ctx, 7, 7)

			Convey("Then that value should be returned", func() {
				So(err, ShouldBeNil)
				So(v, ShouldEqual, 7)
			})
		})

		Convey("When the range is negative", func() {
			v, err := src.IntRange(ctx, -10, -5)
			So(err, ShouldBeNil)
			So(v, ShouldBeBetweenOrEqual, -10, -5)
		})

		Convey("When the range is wider than the largest int", func() {
			wide := []struct{ lo, hi int }{
				{math.MinInt, math.MaxInt},
				{-1, math.MaxInt},
				{math.MinInt, 1},
				{math.MinInt / 2, math.MaxInt/2 + 2},
			}

			Convey("Then every draw should stay within the bounds", func() {
				for _, r := range wide {
					var outOfRange []int
					for i := 0; i < 1_000; i++ {
						v, err := src.IntRange(ctx, r.lo, r.hi)
						So(err, ShouldBeNil)
						if v < r.lo || v > r.hi {
							outOfRange = append(outOfRange, v)
						}
					}
					So(outOfRange, ShouldBeEmpty)
				}
			})
		})

		Convey("When the range ends at the largest int", func() {
			v, err := src.IntRange(ctx, math.MaxInt-1, math.MaxInt)
			So(err, ShouldBeNil)
			So(v, ShouldBeGreaterThanOrEqualTo, math.MaxInt-1)
		})

		Convey("When min is greater than max", func() {
			_, err := src.IntRange(ctx, 10, 1)

			Convey("Then it should return ErrInvalidRange", func() {
				So(errors.Is(err, random.ErrInvalidRange), ShouldBeTrue)
			})
		})

		Convey("When the context is canceled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := src.IntRange(cctx, 0, 100)

			Convey("Then it should return the context error", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given two sources with the same seed", t, func() {
		a := random.NewMathSource(random.WithSeed(7))
		b := random.NewMathSource(random.WithSeed(7))

		Convey("Then they should produce the same values", func() {
			for i := 0; i < 50; i++ {
				va, _ := a.IntRange(context.Background(), 0, 100)
				vb, _ := b.IntRange(context.Background(), 0, 100)
				So(va, ShouldEqual, vb)
			}
		})
	})

	Convey("Given a source shared by many goroutines", t, func() {
		src := random.NewMathSource()
		var wg sync.WaitGroup
		errs := make(chan error, 64)

		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if _, err := src.IntRange(context.Background(), 0, 100); err != nil {
						errs <- err
						return
					}
				}
			}()
		}
		wg.Wait()
		close(errs)

		Convey("Then no draw should fail", func() {
			So(len(errs), ShouldEqual, 0)
		})
	})
}

func TestSequence_IntRange(t *testing.T) {
	Convey("Given a fixed sequence", t, func() {
		ctx := context.Background()
		seq := random.NewSequence(3, 97)

		Convey("When drawing past the end", func() {
			first, err1 := seq.IntRange(ctx, 0, 100)
			second, err2 := seq.IntRange(ctx, 0, 100)
			third, err3 := seq.IntRange(ctx, 0, 100)

			Convey("Then it should replay values and wrap around", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(err3, ShouldBeNil)
				So(first, ShouldEqual, 3)
				So(second, ShouldEqual, 97)
				So(third, ShouldEqual, 3)
			})
		})

		Convey("When a value falls outside the requested range", func() {
			_, err := seq.IntRange(ctx, 10, 20)

			Convey("Then it should return ErrOutOfRange", func() {
				So(errors.Is(err, random.ErrOutOfRange), ShouldBeTrue)
			})
		})

		Convey("When the range is inverted", func() {
			_, err := seq.IntRange(ctx, 5, 0)
			So(errors.Is(err, random.ErrInvalidRange), ShouldBeTrue)
		})
	})

	Convey("Given an empty sequence", t, func() {
		seq := random.NewSequence()

		Convey("Then drawing should return ErrExhausted", func() {
			_, err := seq.IntRange(context.Background(), 0, 100)
			So(errors.Is(err, random.ErrExhausted), ShouldBeTrue)
		})
	})

	Convey("Given a sequence built from a caller slice", t, func() {
		values := []int{1, 2}
		seq := random.NewSequence(values...)
		values[0] = 99

		Convey("Then later changes to the slice should not leak in", func() {
			v, err := seq.IntRange(context.Background(), 0, 100)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1)
		})
	})
}
