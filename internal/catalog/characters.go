// Package catalog holds the fixed cast of story characters a child can
// pick reading buddies from. The catalog is static: characters are never
// created or destroyed at runtime.
package catalog

// Character is one predefined story buddy.
type Character struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
}

// characters is the full catalog, in display order.
var characters = []Character{
	{ID: "1", Name: "Aslan Leo", ImagePath: "/characters/Aslan Leo.png"},
	{ID: "2", Name: "Baykus Bibo", ImagePath: "/characters/Baykus Bibo.png"},
	{ID: "3", Name: "Geyik Pampa", ImagePath: "/characters/Geyik Pampa.png"},
	{ID: "4", Name: "Kedi Pamuk", ImagePath: "/characters/Kedi Pamuk.png"},
	{ID: "5", Name: "Kopek Akita", ImagePath: "/characters/Kopek Akita.png"},
	{ID: "6", Name: "Midilli Pika", ImagePath: "/characters/Midilli Pika.png"},
	{ID: "7", Name: "Penguen Poni", ImagePath: "/characters/Penguen Poni.png"},
	{ID: "8", Name: "Rakun Riki", ImagePath: "/characters/Rakun Riki.png"},
	{ID: "9", Name: "Sincap Biva", ImagePath: "/characters/Sincap Biva.png"},
	{ID: "10", Name: "Zurafa Zipi", ImagePath: "/characters/Zurafa Zipi.png"},
}

// All returns the catalog in display order. The returned slice is a copy.
func All() []Character {
	out := make([]Character, len(characters))
	copy(out, characters)
	return out
}

// ByID looks up a character by its identifier.
func ByID(id string) (Character, bool) {
	for _, c := range characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// ByName looks up a character by its display name.
func ByName(name string) (Character, bool) {
	for _, c := range characters {
		if c.Name == name {
			return c, true
		}
	}
	return Character{}, false
}
