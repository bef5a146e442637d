package story

import (
	"fmt"
	"strings"

	"github.com/tolgahan/oka/internal/catalog"
)

const storySystemPrompt = `Sen 5-10 yaş arası çocuklar için didaktik hikayeler yazan bir masalcısın. Hikayelerin akıcı, anlaşılır ve yaşa uygun olur; etik veya ahlaki sorun içermez.`

func buildStoryUserMessage(childName string, characters []catalog.Character) string {
	names := make([]string, len(characters))
	for i, c := range characters {
		names[i] = c.Name
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Kullanıcının ismi: %s\n", childName))
	b.WriteString(fmt.Sprintf("Seçilen karakterler: %s\n", strings.Join(names, ", ")))
	b.WriteString(`
Bu isimleri kullanarak didaktik bir hikaye yaz.
- Hikaye 200-250 kelime aralığında olmalı.
- Okuyucular 5-10 yaş aralığında olacağı için hikaye bu yaşlara hitap etmeli.
- Hikaye akıcı ve anlaşılır olmalı.
- Hikayenin başlığı da olsun.

Çıktı formatı JSON olmalı:

{
  "title": "Hikaye Başlığı",
  "content": "Hikaye metni...",
  "theme": "Hikayenin ana teması (örn: Dostluk)"
}`)

	return b.String()
}
