package quadtree_test

import (
	"fmt"

	"github.com/mikenye/quadgeom/primitive"
	"github.com/mikenye/quadgeom/quadtree"
)

func ExampleQuadTree() {
	qt, err := quadtree.New([]quadtree.ShapeInfo{
		quadtree.Anon(primitive.NewRect(0, 0, 1, 1)),
		quadtree.Anon(primitive.NewCircle(primitive.NewPoint(5, 5), 1)),
	})
	if err != nil {
		panic(err)
	}

	p := primitive.NewPoint(0.5, 0.5)
	fmt.Println("intersects:", qt.Intersects(p, quadtree.All))

	d, ok := qt.Dist(primitive.NewPoint(5, 7), quadtree.All)
	fmt.Println("dist:", d, ok)
	// Output:
	// intersects: true
	// dist: 1 true
}

func ExampleQuadTree_Intersects_filtered() {
	qt, err := quadtree.New([]quadtree.ShapeInfo{
		quadtree.NewShapeInfo(primitive.NewRect(0, 0, 1, 1), 1, 0),
		quadtree.NewShapeInfo(primitive.NewRect(0, 0, 1, 1), 2, 0),
	})
	if err != nil {
		panic(err)
	}

	p := primitive.NewPoint(0.5, 0.5)
	fmt.Println(qt.Intersects(p, quadtree.Query{Tags: quadtree.WithTag(1), Kinds: quadtree.AllKinds()}))
	fmt.Println(qt.Intersects(p, quadtree.Query{Tags: quadtree.ExceptTag(1), Kinds: quadtree.AllKinds()}))
	// Output:
	// true
	// true
}
