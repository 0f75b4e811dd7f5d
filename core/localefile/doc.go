// Package localefile reads and writes locale documents.
//
// A locale document is a tree rooted at its locale segment, for example:
//
//	en:
//	  users:
//	    title: Users
//
// The package is split in two layers:
//
//   - Codec turns bytes into a tree.Node and back. YAML, TOML and JSON are supported and
//     every codec emits mapping keys in lexicographic order at every depth, so the same
//     tree always produces the same bytes.
//   - Store moves bytes in and out of a backend. FSStore writes through afero with a
//     temp file and a rename; BucketStore writes through the object storage client.
//
// File ties both together and satisfies the reconcile Input and Output interfaces:
//
//	store := localefile.NewFSStore(afero.NewOsFs(), cfg.Locales.Dir)
//	f, err := localefile.NewFile(store, "en.yml", cfg.Locales.Format, false)
//	doc, err := f.Read(ctx)  // empty Node when en.yml does not exist
//	err = f.Write(ctx, doc)
//
// YAML documents are passed through StripTypeTags on both decode and encode. It clears node
// tags such as !!null or !ruby/object:Hash that Rails-style locale loaders reject and leaves
// scalar values alone.
package localefile
