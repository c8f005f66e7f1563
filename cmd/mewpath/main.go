package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/mastercactapus/mewpath/convert"
)

func main() {
	log.SetFlags(log.Lshortfile)

	diameter := flag.Float64("diameter", 0, "Tube diameter in mm (0 keeps the path Cartesian).")
	thickness := flag.Float64("thickness", 0, "Tube wall thickness in mm.")
	xAxis := flag.String("x", "x", "GCode letter read as the x coordinate.")
	yAxis := flag.String("y", "y", "GCode letter read as the y coordinate, or 'auto' to detect the wrap letter.")
	zAxis := flag.String("z", "z", "GCode letter read as the z coordinate.")
	longAxis := flag.String("long", "x", "Long axis of the tube (x, y or z).")
	res := flag.Int("res", 20, "Number of points to sample per arc.")
	serve := flag.String("serve", "", "Address to bind the preview server to (instead of batch conversion).")
	dir := flag.String("dir", ".", "Directory served in preview mode.")
	flag.Parse()

	conv, err := convert.New(convert.Config{
		Diameter:   *diameter,
		Thickness:  *thickness,
		XAxis:      *xAxis,
		YAxis:      *yAxis,
		ZAxis:      *zAxis,
		LongAxis:   *longAxis,
		Resolution: *res,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if *serve != "" {
		api := newAPI(conv, *dir)

		err = http.ListenAndServe(*serve, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "*")
			log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
			api.ServeHTTP(w, req)
		}))
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	for _, name := range flag.Args() {
		out, pts, err := conv.File(name)
		if err != nil {
			log.Fatalln(err)
		}
		if out == "" {
			log.Printf("%s: no gcode commands", name)
			continue
		}
		log.Printf("%s: %d points -> %s", name, len(pts), out)
	}
}
