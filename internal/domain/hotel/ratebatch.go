package hotel

import "sync"

// RateBatchSize is the vendor's observed per-request hotel id limit.
const RateBatchSize = 50

// ChunkIDs splits ids into consecutive batches of at most size entries.
func ChunkIDs(ids []string, size int) [][]string {
	if size <= 0 {
		size = RateBatchSize
	}
	out := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		out = append(out, ids[start:end])
	}
	return out
}

// RateBoard holds the latest known offer per hotel. Every batch is tagged with
// a token from Next; Apply ignores offers whose token is older than the one
// already recorded for that hotel, so a slow stale batch never overwrites a
// fresher one.
type RateBoard struct {
	mu     sync.Mutex
	next   uint64
	offers map[string]RateOffer
	tokens map[string]uint64
}

func NewRateBoard() *RateBoard {
	return &RateBoard{
		offers: make(map[string]RateOffer),
		tokens: make(map[string]uint64),
	}
}

// Next issues a monotonically increasing batch token.
func (b *RateBoard) Next() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	return b.next
}

// Apply records offers from the batch identified by token and returns how many
// were accepted. The cheapest offer per hotel within a batch wins.
func (b *RateBoard) Apply(token uint64, offers []RateOffer) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	best := make(map[string]RateOffer, len(offers))
	for _, o := range offers {
		cur, ok := best[o.HotelID]
		if !ok || o.TotalPrice < cur.TotalPrice {
			best[o.HotelID] = o
		}
	}

	accepted := 0
	for hotelID, o := range best {
		if prev, ok := b.tokens[hotelID]; ok && prev > token {
			continue
		}
		b.tokens[hotelID] = token
		b.offers[hotelID] = o
		accepted++
	}
	return accepted
}

func (b *RateBoard) Offer(hotelID string) (RateOffer, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.offers[hotelID]
	return o, ok
}

// Decorate overlays the board's prices onto summaries that have an offer.
func (b *RateBoard) Decorate(hotels []Summary) []Summary {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Summary, len(hotels))
	copy(out, hotels)
	for i := range out {
		if o, ok := b.offers[out[i].ID]; ok {
			out[i].Price = o.TotalPrice
			if o.Currency != "" {
				out[i].Currency = o.Currency
			}
		}
	}
	return out
}
