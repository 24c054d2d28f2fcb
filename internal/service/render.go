package service

import (
	"fmt"
	"strconv"
	"strings"

	"rentassist/internal/model"
	"rentassist/internal/utils"
)

// ResultRenderer formats matched properties into a bilingual, templated
// reply. Rendering is pure: identical inputs always produce identical
// output text.
type ResultRenderer struct {
	displayLimit int
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(displayLimit int) *ResultRenderer {
	if displayLimit <= 0 {
		displayLimit = 3
	}
	return &ResultRenderer{displayLimit: displayLimit}
}

// Render formats a reply for the given properties, language and intent.
// Zero properties produce the fixed no-results template; otherwise a
// greeting echoing the populated intent fields, up to displayLimit
// property summaries, and a deep link mirroring the intent.
func (r *ResultRenderer) Render(properties []model.Property, lang model.Language, intent model.Intent) model.RenderedReply {
	if len(properties) == 0 {
		if lang == model.LanguageMalay {
			return model.RenderedReply{Message: "Maaf, saya tidak jumpa hartanah yang sesuai dengan keperluan anda. Cuba ubah kriteria carian anda."}
		}
		return model.RenderedReply{Message: "Sorry, I couldn't find any properties matching your requirements. Try adjusting your search criteria."}
	}

	searchURL := DeepLink(intent)

	var b strings.Builder
	if lang == model.LanguageMalay {
		fmt.Fprintf(&b, "Saya jumpa %d hartanah yang sesuai untuk anda! ", len(properties))
		if intent.Location != "" {
			fmt.Fprintf(&b, "di %s ", intent.Location)
		}
		if intent.Bedrooms > 0 {
			fmt.Fprintf(&b, "dengan %d bilik tidur ", intent.Bedrooms)
		}
		if intent.MaxPrice > 0 {
			fmt.Fprintf(&b, "dalam bajet RM%s ", formatPrice(intent.MaxPrice))
		}
		if intent.Furnished == model.FurnishingFull {
			b.WriteString("berperabot penuh ")
		} else if intent.Furnished == model.FurnishingPartial {
			b.WriteString("separa perabot ")
		}
		b.WriteString("\n\nBerikut adalah beberapa cadangan:\n\n")
	} else {
		fmt.Fprintf(&b, "I found %d properties that match your needs! ", len(properties))
		if intent.Location != "" {
			fmt.Fprintf(&b, "in %s ", intent.Location)
		}
		if intent.Bedrooms > 0 {
			fmt.Fprintf(&b, "with %d bedrooms ", intent.Bedrooms)
		}
		if intent.MaxPrice > 0 {
			fmt.Fprintf(&b, "under RM%s ", formatPrice(intent.MaxPrice))
		}
		if intent.Furnished == model.FurnishingFull {
			b.WriteString("fully furnished ")
		} else if intent.Furnished == model.FurnishingPartial {
			b.WriteString("partially furnished ")
		}
		b.WriteString("\n\nHere are some recommendations:\n\n")
	}

	shown := properties
	if len(shown) > r.displayLimit {
		shown = shown[:r.displayLimit]
	}
	for i, prop := range shown {
		r.renderSummary(&b, i+1, prop, lang)
	}

	if searchURL != "" {
		if lang == model.LanguageMalay {
			fmt.Fprintf(&b, "\n[Lihat Semua Hartanah](%s)", searchURL)
		} else {
			fmt.Fprintf(&b, "\n[View All Properties](%s)", searchURL)
		}
	}

	return model.RenderedReply{
		Message:   b.String(),
		SearchURL: searchURL,
	}
}

func (r *ResultRenderer) renderSummary(b *strings.Builder, index int, prop model.Property, lang model.Language) {
	fmt.Fprintf(b, "%d. **%s**\n", index, prop.LocalizedTitle(lang))
	if lang == model.LanguageMalay {
		fmt.Fprintf(b, "   - Lokasi: %s\n", prop.Location)
		fmt.Fprintf(b, "   - Harga: RM%s/bulan\n", formatPrice(prop.Price))
		fmt.Fprintf(b, "   - Bilik: %d bilik tidur, %d bilik air\n", prop.Bedrooms, prop.Bathrooms)
		if desc := prop.LocalizedDescription(lang); desc != "" {
			fmt.Fprintf(b, "   - %s\n", desc)
		}
		if prop.Contact != nil && *prop.Contact != "" {
			fmt.Fprintf(b, "   - Hubungi: %s\n", *prop.Contact)
		}
		if prop.ImageURL != nil && *prop.ImageURL != "" {
			fmt.Fprintf(b, "   - [Gambar](%s)\n", *prop.ImageURL)
		}
	} else {
		fmt.Fprintf(b, "   - Location: %s\n", prop.Location)
		fmt.Fprintf(b, "   - Price: RM%s/month\n", formatPrice(prop.Price))
		fmt.Fprintf(b, "   - Rooms: %d bedrooms, %d bathrooms\n", prop.Bedrooms, prop.Bathrooms)
		if desc := prop.LocalizedDescription(lang); desc != "" {
			fmt.Fprintf(b, "   - %s\n", desc)
		}
		if prop.Contact != nil && *prop.Contact != "" {
			fmt.Fprintf(b, "   - Contact: %s\n", *prop.Contact)
		}
		if prop.ImageURL != nil && *prop.ImageURL != "" {
			fmt.Fprintf(b, "   - [Photo](%s)\n", *prop.ImageURL)
		}
	}
	b.WriteString("\n")
}

// DeepLink builds the /search URL for an intent. Only populated fields are
// emitted, in the fixed order location, bedrooms, minPrice, maxPrice,
// furnished. The intent never carries a minimum price, so minPrice is
// always omitted.
func DeepLink(intent model.Intent) string {
	params := []utils.SearchParam{
		{Key: "location", Value: intent.Location},
	}
	if intent.Bedrooms > 0 {
		params = append(params, utils.SearchParam{Key: "bedrooms", Value: strconv.Itoa(intent.Bedrooms)})
	}
	if intent.MaxPrice > 0 {
		params = append(params, utils.SearchParam{Key: "maxPrice", Value: formatPrice(intent.MaxPrice)})
	}
	if intent.Furnished != model.FurnishingUnspecified {
		params = append(params, utils.SearchParam{Key: "furnished", Value: string(intent.Furnished)})
	}
	return utils.BuildSearchURL(params)
}

// formatPrice renders a price without trailing zeros (RM1500, RM1200.50)
func formatPrice(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
