// SPDX-License-Identifier: MIT

package ttsaudio

import (
	"fmt"
	"io"

	"github.com/idobn/ttsaudio/source"
	"github.com/idobn/ttsaudio/utils"
)

// ReadAllMono16 drains a source through a resampler and mono mixdown,
// collecting the whole stream as 16-bit PCM at targetRate. It is the
// offline companion to the chunked Converter path: decode a file, pull
// everything through here, then hand the result to Convert.
func ReadAllMono16(src source.Source, targetRate int) ([]int16, error) {
	resampled := source.NewResampler(src, targetRate)
	chunker := source.NewChunker(resampled, 4096)

	var pcm16 []int16

	for {
		chunk, _, err := chunker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}

		for _, v := range chunk {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}
	}

	return pcm16, nil
}
