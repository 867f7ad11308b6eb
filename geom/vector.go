package geom

// Vec3 is a point or extent in three-dimensional space. Within cratepack it
// is used both as a position (the minimum corner of an AABB) and as a set
// of oriented dimensions (width, depth, height already permuted by the
// orientation enumerator).
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of v and o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// AABB is an axis-aligned bounding box described by its minimum corner
// (Min, the placement origin) and its extent along each axis (Size).
type AABB struct {
	Min  Vec3 // minimum corner: the item's placement origin
	Size Vec3 // extent along X (width), Y (depth), Z (height)
}

// NewAABB builds an AABB from an origin and an oriented size.
func NewAABB(origin, size Vec3) AABB {
	return AABB{Min: origin, Size: size}
}

// Max returns the maximum corner of the box (Min + Size).
func (b AABB) Max() Vec3 {
	return b.Min.Add(b.Size)
}

// Top returns the Z coordinate of the box's top face.
func (b AABB) Top() float64 {
	return b.Min.Z + b.Size.Z
}

// CentreXY returns the XY projection of the box's geometric centre —
// the point a footprint overhang check compares against its supporters.
func (b AABB) CentreXY() (x, y float64) {
	return b.Min.X + b.Size.X/2, b.Min.Y + b.Size.Y/2
}

// BaseArea returns the box's footprint area (width * depth).
func (b AABB) BaseArea() float64 {
	return b.Size.X * b.Size.Y
}

// Volume returns width * depth * height.
func (b AABB) Volume() float64 {
	return b.Size.X * b.Size.Y * b.Size.Z
}
