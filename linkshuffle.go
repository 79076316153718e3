/*
Package linkshuffle shuffles the head and body tiles of Link's
spritesheet, reading and writing either A Link to the Past cartridge
images or ZSPR sprite files.
*/
package linkshuffle

import (
	"log"
	"math/rand"
	"time"
)

type Shuffler struct {
	catalog *Catalog
	logger  *log.Logger
	rnd     *rand.Rand
}

func New(catalog *Catalog, logger *log.Logger) *Shuffler {
	return &Shuffler{
		catalog: catalog,
		logger:  logger,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
