package main

import "image"

// pageLayout stacks showcase cards in one scrollable column. Card tops are
// page coordinates; viewport coordinates subtract the scroll offset.
type pageLayout struct {
	padding  float64
	tops     []float64
	sizes    []image.Point
	content  float64
	scroll   float64
	viewport float64
}

func newPageLayout(padding float64, sizes []image.Point) *pageLayout {
	l := &pageLayout{padding: padding, sizes: sizes}
	y := padding
	for _, s := range sizes {
		l.tops = append(l.tops, y)
		y += float64(s.Y) + padding
	}
	l.content = y
	return l
}

// setViewport records the window height and keeps the scroll in range.
func (l *pageLayout) setViewport(height int) {
	l.viewport = float64(height)
	l.scrollBy(0)
}

// scrollBy moves the page by dy pixels, positive scrolling down.
func (l *pageLayout) scrollBy(dy float64) {
	l.scroll = min(max(l.scroll+dy, 0), max(l.content-l.viewport, 0))
}

// cardOrigin is the top-left corner of card i in viewport coordinates,
// what a browser reports as the element's bounding client rect.
func (l *pageLayout) cardOrigin(i int) (left, top float64) {
	return l.padding, l.tops[i] - l.scroll
}

// visible reports whether any row of card i is in the viewport.
func (l *pageLayout) visible(i int) bool {
	_, top := l.cardOrigin(i)
	return top+float64(l.sizes[i].Y) > 0 && top < l.viewport
}

// cardAt returns the card under viewport point (x, y), or -1.
func (l *pageLayout) cardAt(x, y float64) int {
	for i, s := range l.sizes {
		left, top := l.cardOrigin(i)
		if x >= left && x < left+float64(s.X) && y >= top && y < top+float64(s.Y) {
			return i
		}
	}
	return -1
}

// nearest returns the card whose center is closest to the viewport's
// vertical center.
func (l *pageLayout) nearest() int {
	best, bestDist := -1, 0.0
	mid := l.viewport / 2
	for i, s := range l.sizes {
		_, top := l.cardOrigin(i)
		d := top + float64(s.Y)/2 - mid
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
