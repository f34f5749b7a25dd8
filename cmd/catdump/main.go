package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"graft/catalog"
	"graft/tuple"
	"graft/typing"
)

func main() {
	var file = flag.String("file", "catalog.jsonl", "Catalog file to read")
	flag.Parse()

	store, err := catalog.NewFileStore(*file)
	if err != nil {
		log.Fatalf("Failed to open catalog store: %v", err)
	}
	registry, err := catalog.Open(store)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = registry.Current().Names()
	}

	failed := false
	for _, name := range names {
		info, err := registry.ResolveTableInfo(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed = true
			continue
		}
		printTable(name, info)
	}
	if failed {
		os.Exit(1)
	}
}

func printTable(name string, info *catalog.TableInfo) {
	fmt.Printf("%s (%s, %s)\n", name, info.Kind, info.TableId)
	if info.Kind == tuple.KindEdge {
		fmt.Printf("  src %s key %s\n", info.SrcTableId, columnList(info.SrcKeyTyping))
		fmt.Printf("  dst %s key %s\n", info.DstTableId, columnList(info.DstKeyTyping))
	}
	fmt.Printf("  key %s\n", columnList(info.KeyTyping))
	fmt.Printf("  val %s\n", columnList(info.ValTyping))
	for _, a := range info.Associates {
		fmt.Printf("  assoc %s val %s\n", a.TableId, columnList(a.ValTyping))
	}
}

func columnList(cols []typing.Column) string {
	return typing.NamedTuple(cols...).String()
}
