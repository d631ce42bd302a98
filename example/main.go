package main

import (
	"fmt"

	hashmap "github.com/arunma/buildx-basic-hashmap"
)

func main() {
	reviews := hashmap.New[string, string]()

	// Insert some reviews
	reviews.Set("Adventures of Huckleberry Finn", "My favorite book.")
	reviews.Set("Grimms' Fairy Tales", "Masterpiece.")
	reviews.Set("Pride and Prejudice", "Very enjoyable.")
	reviews.Set("The Adventures of Sherlock Holmes", "Eye lyked it alot.")

	// Membership check for a book that was never reviewed
	if !reviews.Contains("Les Miserables") {
		fmt.Printf("We've got %d reviews but Les Miserables isn't one\n", reviews.Len())
	}

	// Drop a review; Remove hands the evicted pair back
	if title, review, ok := reviews.Remove("The Adventures of Sherlock Holmes"); ok {
		fmt.Printf("Dropped %q (%s)\n", title, review)
	}

	// Look up one reviewed and one unreviewed title
	toFind := []string{"Pride and Prejudice", "Alice's Adventure in Wonderland"}
	for _, book := range toFind {
		if review, ok := reviews.Get(book); ok {
			fmt.Printf("%s: %s\n", book, review)
		} else {
			fmt.Printf("%s is unreviewed\n", book)
		}
	}

	// Iterate over everything that is left
	for book, review := range reviews.All() {
		fmt.Printf("%s: %s\n", book, review)
	}
}
