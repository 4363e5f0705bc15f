package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"bookcatalog/internal/entity"
	"bookcatalog/internal/store"
)

func main() {
	books := flag.Int("books", 100, "number of books to generate")
	authors := flag.Int("authors", 20, "number of authors to generate")
	publications := flag.Int("publications", 5, "number of publications to generate")
	out := flag.String("out", "-", "output file, - for stdout")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *books < 0 || *authors < 0 || *publications < 0 {
		log.Fatal("counts must not be negative")
	}

	log.Printf("Generating %d books, %d authors, %d publications...", *books, *authors, *publications)
	snap := generate(rand.New(rand.NewSource(*seed)), *books, *authors, *publications)

	var w io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}

	if err := store.EncodeSnapshot(w, snap); err != nil {
		log.Fatalf("Failed to write snapshot: %v", err)
	}
	if *out != "-" {
		log.Printf("Wrote snapshot to %s", *out)
	}
}

// generate builds a catalog whose cross-references are all reciprocated.
func generate(rng *rand.Rand, numBooks, numAuthors, numPublications int) store.Snapshot {
	categories := []string{"Fiction", "Programming", "Tech", "webdev", "History", "Science", "Romance", "Mystery", "Biography", "Art"}
	languages := []string{"EN", "ES", "FR", "DE", "IT", "PT", "ZH", "JA"}
	names := []string{"shantanu", "isha", "ana", "bo", "chen", "dara", "eli", "fatima", "gus", "hana"}
	presses := []string{"Chakra", "VSCODE", "Penguin", "Oxford", "MIT Press", "Springer", "Wiley"}

	snap := store.Snapshot{
		Books:        make([]entity.Book, 0, numBooks),
		Authors:      make([]entity.Author, 0, numAuthors),
		Publications: make([]entity.Publication, 0, numPublications),
	}
	for i := 0; i < numAuthors; i++ {
		snap.Authors = append(snap.Authors, entity.Author{
			ID:    i + 1,
			Name:  fmt.Sprintf("%s%d", names[i%len(names)], i+1),
			Books: []string{},
		})
	}
	for i := 0; i < numPublications; i++ {
		snap.Publications = append(snap.Publications, entity.Publication{
			ID:    i + 1,
			Name:  fmt.Sprintf("%s %d", presses[i%len(presses)], i+1),
			Books: []string{},
		})
	}

	for i := 0; i < numBooks; i++ {
		b := entity.Book{
			ISBN:      fmt.Sprintf("978%010d", i+1),
			Title:     fmt.Sprintf("Book Title %d - %s", i+1, getRandomWord(rng)),
			Authors:   []int{},
			Language:  languages[rng.Intn(len(languages))],
			PubDate:   fmt.Sprintf("%d-%02d-%02d", 1950+rng.Intn(75), 1+rng.Intn(12), 1+rng.Intn(28)),
			NumOfPage: entity.PageCount(100 + rng.Intn(800)),
			Category:  pick(rng, categories, 1+rng.Intn(3)),
		}

		if numAuthors > 0 {
			for _, idx := range rng.Perm(numAuthors)[:min(numAuthors, 1+rng.Intn(3))] {
				b.Authors = append(b.Authors, idx+1)
				snap.Authors[idx].Books = append(snap.Authors[idx].Books, b.ISBN)
			}
		}
		if numPublications > 0 {
			idx := rng.Intn(numPublications)
			b.Publication = idx + 1
			snap.Publications[idx].Books = append(snap.Publications[idx].Books, b.ISBN)
		}
		snap.Books = append(snap.Books, b)
	}

	return snap
}

// pick returns n distinct values from from.
func pick(rng *rand.Rand, from []string, n int) []string {
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(from))[:min(n, len(from))] {
		out = append(out, from[i])
	}
	return out
}

func getRandomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}
