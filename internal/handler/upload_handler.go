package handlers

import (
	"net/http"
)

// UploadImage принимает multipart-файл "file" и кладет его в хранилище.
// Тип и размер проверяются до сетевого вызова.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+1024*1024)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл больше 5 МБ", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Файл не передан", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	result, err := h.MediaService.Upload(r.Context(), header.Filename, contentType, header.Size, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, result, http.StatusCreated)
}

// DeleteImage удаляет объект по publicId; отсутствующий объект - тоже успех
func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	publicID := r.URL.Query().Get("publicId")
	if publicID == "" {
		WriteError(w, "Не указан publicId", http.StatusBadRequest)
		return
	}

	if err := h.MediaService.DeleteByPublicID(r.Context(), publicID); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Изображение удалено"}, http.StatusOK)
}
