// Package decomp builds a tree decomposition of a triangulated planar
// embedding and rewrites it into nice form.
//
// The pipeline, grounded on the reference implementation's
// triangulation/spantree/dualgraph/tree_decomposition/nice_tree_decomposition
// stages: Triangulate ensures every face of a dcel.Store is a
// triangle (a no-op on an embedding produced by embed.Embed, which is
// already maximal planar); ComputeSpanningTree computes a BFS spanning tree
// of the primal graph by walking the DCEL's rotational order;
// DualGraph connects two faces iff the primal edge they share is a
// spanning-tree edge; BuildBags walks the face
// dual as a tree from a chosen root face, building one bag per face
// by unioning the face's vertices with their spanning-tree ancestor
// chains; NiceFrom rewrites that raw decomposition into the binary,
// one-operation-per-node form the dp package's engine consumes.
package decomp
