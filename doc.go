// Package forktree simulates a Unix process tree under fork and exit.
//
// A simulation applies a random or explicit action log such as
// "a+b,b+c,b-" to a tree rooted at "a", reparenting orphans either to the
// root or to the exiting process's parent, and prints the tree after each
// step. With solving disabled the output becomes a quiz: the actions or the
// trees are replaced by question marks.
//
// The Service façade wires the simulator with run storage and the ambient
// services:
//
//	srv := forktree.New(forktree.WithOutput(os.Stdout))
//	result, _ := srv.Runtime().Run(ctx, nil)
//	again, _ := srv.Runtime().Replay(ctx, result.ID, nil)
//
// See the sub-packages for the tree model, action grammar, generator and
// renderer.
package forktree
