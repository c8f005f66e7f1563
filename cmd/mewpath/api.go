package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/mastercactapus/mewpath/convert"
	"github.com/mastercactapus/mewpath/coord"
)

type api struct {
	http.Handler
	conv *convert.Converter
	dir  string
	sse  *sse.Server
	hub  *hub
}

func newAPI(conv *convert.Converter, dir string) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		conv:    conv,
		dir:     dir,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
		hub: newHub(),
	}

	fs := http.StripPrefix("/files", http.FileServer(http.Dir(dir)))
	r.PathPrefix("/files/").Methods("GET").Handler(fs)
	r.PathPrefix("/files/").Methods("PUT").Handler(http.StripPrefix("/files", http.HandlerFunc(a.putFile)))
	r.PathPrefix("/files/").Methods("DELETE").Handler(http.StripPrefix("/files", http.HandlerFunc(a.deleteFile)))

	r.HandleFunc("/api/convert", a.convertFile).Methods("POST")
	r.HandleFunc("/api/path", a.pathJSON).Methods("GET")
	r.HandleFunc("/ws", a.hub.serve)
	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

func safePath(base, name string) (bool, string) {
	if filepath.Separator != '/' && strings.ContainsRune(name, filepath.Separator) {
		log.Println("invalid path '" + name + "'")
		return false, ""
	}
	dir := base
	if dir == "" {
		dir = "."
	}
	fullName := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	return true, fullName
}

func (a *api) convertFile(w http.ResponseWriter, req *http.Request) {
	fname := req.FormValue("file")
	ok, name := safePath(a.dir, fname)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	out, pts, err := a.conv.File(name)
	if err != nil {
		log.Printf("ERROR: convert '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	if out == "" {
		http.Error(w, "no gcode commands in '"+fname+"'", http.StatusUnprocessableEntity)
		return
	}

	res := struct {
		Input  string `json:"input"`
		Output string `json:"output"`
		Points int    `json:"points"`
	}{
		Input:  fname,
		Output: strings.TrimSuffix(fname, path.Ext(fname)) + ".csv",
		Points: len(pts),
	}
	data, err := json.Marshal(res)
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	a.sse.SendMessage("/events/convert", sse.SimpleMessage(string(data)))
	a.hub.broadcastPath(pts)

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (a *api) pathJSON(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dir, req.FormValue("file"))
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	f, err := os.Open(name)
	if err != nil {
		log.Printf("ERROR: open '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	defer f.Close()

	pts, err := a.conv.Convert(f)
	if err != nil {
		log.Printf("ERROR: convert '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	if pts == nil {
		pts = []coord.Point{}
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(pts)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

func (a *api) putFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	os.MkdirAll(filepath.Dir(name), 0755)
	f, err := os.Create(name)
	if err != nil {
		log.Printf("ERROR: create '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
	defer f.Close()
	_, err = io.Copy(f, req.Body)
	if err != nil {
		log.Printf("ERROR: write '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}

func (a *api) deleteFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dir, req.URL.Path)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	err := os.Remove(name)
	if err != nil {
		log.Printf("ERROR: delete '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}
